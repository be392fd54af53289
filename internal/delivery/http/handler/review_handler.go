package handler

import (
	"errors"

	"mualleem-api/internal/delivery/http/dto"
	"mualleem-api/internal/domain/entity"
	"mualleem-api/internal/usecase/review"

	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	reviewUsecase *review.Usecase
}

func NewReviewHandler(reviewUsecase *review.Usecase) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase}
}

// Submit godoc
// @Summary      Submit a review
// @Description  Rate a tutoring answer
// @Tags         Reviews
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.SubmitReviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "طلب غير صالح"})
	}

	r := &entity.Review{
		SessionID:   req.SessionID,
		Question:    req.Question,
		Answer:      req.Answer,
		Rating:      req.Rating,
		Feedback:    req.Feedback,
		ModelUsed:   req.ModelUsed,
		ContextUsed: req.ContextUsed,
	}

	if err := h.reviewUsecase.Submit(c.Context(), r); err != nil {
		if errors.Is(err, review.ErrInvalidRating) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "التقييم يجب أن يكون بين 1 و 5"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: "فشل في حفظ التقييم"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SubmitReviewResponse{
		ID:      r.ID,
		Message: "تم إرسال التقييم بنجاح",
	})
}

// Stats godoc
// @Summary      Review statistics
// @Tags         Reviews
// @Produce      json
// @Success      200  {object}  dto.ReviewStatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /reviews/stats [get]
func (h *ReviewHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.reviewUsecase.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: "فشل في جلب إحصائيات التقييمات"})
	}

	return c.Status(fiber.StatusOK).JSON(dto.ReviewStatsResponse{
		TotalReviews:  stats.TotalReviews,
		AverageRating: stats.AverageRating,
		RatingCounts:  stats.RatingCounts,
	})
}
