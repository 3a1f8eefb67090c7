package handlers

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pohlai88/AIBOS-PLATFORM/internal/services"
)

// OCRHandler handles OCR upload requests
type OCRHandler struct {
	ocrService *services.OCRService
}

// NewOCRHandler creates a new OCR handler
func NewOCRHandler(ocrService *services.OCRService) *OCRHandler {
	return &OCRHandler{ocrService: ocrService}
}

// OCRResponse is the JSON body of a successful /ocr call.
type OCRResponse struct {
	Success    bool              `json:"success"`
	Text       string            `json:"text"`
	Confidence float64           `json:"confidence"`
	Method     string            `json:"method"`
	Metadata   services.Metadata `json:"metadata"`
}

// LayoutResponse is the JSON body of a successful /ocr-with-layout call.
type LayoutResponse struct {
	Success    bool                   `json:"success"`
	Results    []services.LayoutEntry `json:"results"`
	Method     string                 `json:"method"`
	TotalWords int                    `json:"total_words"`
}

// ProcessOCR godoc
// @Summary Extract text from an uploaded document
// @Description Upload an image or PDF, run Tesseract over it and get the plain text back with confidence and metadata
// @Tags OCR
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image or PDF file"
// @Success 200 {object} OCRResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]interface{}
// @Router /ocr [post]
func (h *OCRHandler) ProcessOCR(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	reqLog, ctx := requestLogger(c)
	contentType := file.Header.Get("Content-Type")
	reqLog.Info().Str("file", file.Filename).Str("content_type", contentType).Msg("processing upload")

	fileData, err := readUpload(file)
	if err != nil {
		reqLog.Error().Err(err).Str("file", file.Filename).Msg("failed to read upload")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "failed to read uploaded file",
			"method": "tesseract",
			"file":   file.Filename,
		})
	}

	report, err := h.ocrService.ProcessDocument(ctx, fileData, contentType)
	if err != nil {
		reqLog.Error().Err(err).Str("file", file.Filename).Msg("OCR failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  err.Error(),
			"method": "tesseract",
			"file":   file.Filename,
		})
	}

	return c.JSON(OCRResponse{
		Success:    true,
		Text:       report.Text,
		Confidence: report.Confidence,
		Method:     "tesseract",
		Metadata:   report.Metadata,
	})
}

// ProcessOCRWithLayout godoc
// @Summary Extract positioned words from an uploaded document
// @Description Upload an image or PDF and get every recognized word with its bounding box and confidence
// @Tags OCR
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image or PDF file"
// @Success 200 {object} LayoutResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /ocr-with-layout [post]
func (h *OCRHandler) ProcessOCRWithLayout(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	reqLog, ctx := requestLogger(c)
	contentType := file.Header.Get("Content-Type")
	reqLog.Info().Str("file", file.Filename).Str("content_type", contentType).Msg("processing layout upload")

	fileData, err := readUpload(file)
	if err != nil {
		reqLog.Error().Err(err).Str("file", file.Filename).Msg("failed to read upload")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	report, err := h.ocrService.ProcessLayout(ctx, fileData, contentType)
	if err != nil {
		reqLog.Error().Err(err).Str("file", file.Filename).Msg("layout OCR failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(LayoutResponse{
		Success:    true,
		Results:    report.Results,
		Method:     "tesseract-layout",
		TotalWords: report.TotalWords,
	})
}

// requestLogger builds a logger tagged with a fresh request_id and a context
// carrying it for the layers below.
func requestLogger(c *fiber.Ctx) (zerolog.Logger, context.Context) {
	reqLog := log.With().Str("request_id", uuid.NewString()).Logger()
	return reqLog, reqLog.WithContext(c.Context())
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
