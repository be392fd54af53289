package repository

import (
	"context"
	"mualleem-api/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	Stats(ctx context.Context) (entity.ReviewStats, error)
}
