package dto

type SubmitReviewRequest struct {
	SessionID   string `json:"session_id"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Rating      int    `json:"rating"`
	Feedback    string `json:"feedback"`
	ModelUsed   string `json:"model_used"`
	ContextUsed bool   `json:"context_used"`
}

type SubmitReviewResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ReviewStatsResponse struct {
	TotalReviews  int         `json:"total_reviews"`
	AverageRating float64     `json:"average_rating"`
	RatingCounts  map[int]int `json:"rating_counts"`
}
