package review

import (
	"context"
	"errors"

	"mualleem-api/internal/domain/entity"
	"mualleem-api/internal/domain/repository"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type Usecase struct {
	reviewRepo repository.ReviewRepository
}

func NewUsecase(reviewRepo repository.ReviewRepository) *Usecase {
	return &Usecase{reviewRepo: reviewRepo}
}

func (uc *Usecase) Submit(ctx context.Context, review *entity.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}
	return uc.reviewRepo.Create(ctx, review)
}

func (uc *Usecase) Stats(ctx context.Context) (entity.ReviewStats, error) {
	return uc.reviewRepo.Stats(ctx)
}
