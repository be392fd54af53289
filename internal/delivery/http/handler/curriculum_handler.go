package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mualleem-api/internal/delivery/http/dto"
	"mualleem-api/internal/usecase/curriculum"

	"github.com/gofiber/fiber/v2"
)

type CurriculumHandler struct {
	curriculumUsecase *curriculum.Usecase
	dataDir           string
}

func NewCurriculumHandler(curriculumUsecase *curriculum.Usecase, dataDir string) *CurriculumHandler {
	return &CurriculumHandler{
		curriculumUsecase: curriculumUsecase,
		dataDir:           dataDir,
	}
}

// Upload godoc
// @Summary      Upload a curriculum textbook
// @Description  Upload and index a PDF textbook for retrieval
// @Tags         Curriculum
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF file to index"
// @Success      200  {object}  dto.UploadCurriculumResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /upload-curriculum [post]
func (h *CurriculumHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "يجب إرفاق ملف"})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "يجب أن يكون الملف بصيغة PDF"})
	}

	if err := os.MkdirAll(h.dataDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: fmt.Sprintf("خطأ في حفظ الملف: %v", err)})
	}
	path := filepath.Join(h.dataDir, filepath.Base(file.Filename))
	if err := c.SaveFile(file, path); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: fmt.Sprintf("خطأ في حفظ الملف: %v", err)})
	}

	// document name is derived from the filename stem
	result, err := h.curriculumUsecase.Ingest(c.Context(), path, "")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: fmt.Sprintf("خطأ في معالجة الملف: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(dto.UploadCurriculumResponse{
		Message:         "تم رفع المنهج وفهرسته بنجاح",
		Filename:        file.Filename,
		TotalChunks:     result.TotalChunks,
		TotalCharacters: result.TotalCharacters,
		Status:          "indexed",
	})
}

// Stats godoc
// @Summary      Collection statistics
// @Description  Get statistics about the indexed curriculum
// @Tags         Curriculum
// @Produce      json
// @Success      200  {object}  dto.CollectionStatsResponse
// @Router       /stats [get]
func (h *CurriculumHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.curriculumUsecase.Stats(c.Context())
	if err != nil {
		// dashboard payload: surface the fault, do not fail the request
		return c.Status(fiber.StatusOK).JSON(dto.CollectionStatsResponse{
			CollectionName: stats.Name,
			Status:         "error",
			Error:          err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.CollectionStatsResponse{
		CollectionName: stats.Name,
		TotalChunks:    stats.PointCount,
		VectorSize:     stats.VectorSize,
		Status:         "active",
		Storage:        "Qdrant Cloud",
	})
}

// Clear godoc
// @Summary      Clear the curriculum
// @Description  Delete all indexed chunks and recreate an empty collection
// @Tags         Curriculum
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /curriculum [delete]
func (h *CurriculumHandler) Clear(c *fiber.Ctx) error {
	if err := h.curriculumUsecase.Clear(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: fmt.Sprintf("خطأ في مسح المنهج: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{
		Message: "تم مسح المنهج بنجاح",
		Status:  "cleared",
	})
}
