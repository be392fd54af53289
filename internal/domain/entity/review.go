package entity

import "time"

// Review is a student's rating of a tutoring answer.
type Review struct {
	ID          string    `db:"id" json:"id"`
	SessionID   string    `db:"session_id" json:"sessionId"`
	Question    string    `db:"question" json:"question"`
	Answer      string    `db:"answer" json:"answer"`
	Rating      int       `db:"rating" json:"rating"`
	Feedback    string    `db:"feedback" json:"feedback"`
	ModelUsed   string    `db:"model_used" json:"modelUsed"`
	ContextUsed bool      `db:"context_used" json:"contextUsed"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type ReviewStats struct {
	TotalReviews  int         `db:"total_reviews" json:"totalReviews"`
	AverageRating float64     `db:"average_rating" json:"averageRating"`
	RatingCounts  map[int]int `db:"-" json:"ratingCounts"`
}
