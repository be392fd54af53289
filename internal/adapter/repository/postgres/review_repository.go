package postgres

import (
	"context"
	"time"

	"mualleem-api/internal/domain/entity"
	"mualleem-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// create review
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	review.ID = uuid.New().String()
	review.CreatedAt = time.Now()

	query := `
		INSERT INTO "reviews" ("id", "session_id", "question", "answer", "rating", "feedback", "model_used", "context_used", "created_at")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.SessionID,
		review.Question,
		review.Answer,
		review.Rating,
		review.Feedback,
		review.ModelUsed,
		review.ContextUsed,
		review.CreatedAt,
	)
	return err
}

// Stats aggregates review counts and the average rating.
func (r *reviewRepository) Stats(ctx context.Context) (entity.ReviewStats, error) {
	var stats entity.ReviewStats

	query := `
		SELECT COUNT(*) AS total_reviews, COALESCE(AVG("rating"), 0) AS average_rating
		FROM "reviews"
	`
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return entity.ReviewStats{}, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT "rating", COUNT(*) FROM "reviews" GROUP BY "rating"`)
	if err != nil {
		return entity.ReviewStats{}, err
	}
	defer rows.Close()

	stats.RatingCounts = make(map[int]int)
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return entity.ReviewStats{}, err
		}
		stats.RatingCounts[rating] = count
	}

	return stats, rows.Err()
}
