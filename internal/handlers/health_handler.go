package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/pohlai88/AIBOS-PLATFORM/internal/services"
)

const (
	serviceName    = "AIBOS Tesseract OCR"
	serviceVersion = "1.0.0"
)

// HealthHandler handles service info and health check requests
type HealthHandler struct {
	ocrService *services.OCRService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(ocrService *services.OCRService) *HealthHandler {
	return &HealthHandler{ocrService: ocrService}
}

// GetRoot godoc
// @Summary Service info
// @Description Returns the service name, status and version
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) GetRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": serviceName,
		"status":  "running",
		"version": serviceVersion,
	})
}

// GetHealth godoc
// @Summary Health check
// @Description Probes the OCR engine and reports its version
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	version, err := h.ocrService.Version(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("health check failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":            "healthy",
		"service":           "tesseract-ocr",
		"tesseract_version": version,
	})
}
