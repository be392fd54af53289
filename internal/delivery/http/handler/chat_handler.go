package handler

import (
	"fmt"
	"io"
	"strings"

	"mualleem-api/internal/delivery/http/dto"
	"mualleem-api/internal/usecase/tutor"

	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	tutorUsecase *tutor.Usecase
}

func NewChatHandler(tutorUsecase *tutor.Usecase) *ChatHandler {
	return &ChatHandler{tutorUsecase: tutorUsecase}
}

// Chat godoc
// @Summary      Ask the tutor
// @Description  Send a question (optionally with an image) and get a step-by-step explanation in Arabic
// @Tags         Chat
// @Accept       multipart/form-data
// @Produce      json
// @Param        question  formData  string  false  "The student's question"
// @Param        image     formData  file    false  "Optional image of the problem"
// @Success      200  {object}  dto.ChatResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	question := c.FormValue("question")

	var imageData []byte
	imageMime := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: "فشل في قراءة الصورة"})
		}
		imageData, err = io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: "فشل في قراءة الصورة"})
		}

		name := strings.ToLower(file.Filename)
		if strings.HasSuffix(name, ".jpg") || strings.HasSuffix(name, ".jpeg") {
			imageMime = "image/jpeg"
		} else {
			imageMime = "image/png"
		}
	}

	if question == "" && len(imageData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "يجب إرسال سؤال أو صورة"})
	}

	answer, err := h.tutorUsecase.Ask(c.Context(), question, imageData, imageMime)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: fmt.Sprintf("خطأ في معالجة السؤال: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(dto.ChatResponse{
		Answer:      answer.Text,
		Question:    question,
		HasImage:    len(imageData) > 0,
		ContextUsed: answer.ContextUsed,
		ModelUsed:   answer.ModelUsed,
		Provider:    "Requesty.ai Gateway",
	})
}
