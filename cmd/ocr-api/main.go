package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/pohlai88/AIBOS-PLATFORM/internal/core/ocr"
	"github.com/pohlai88/AIBOS-PLATFORM/internal/handlers"
	"github.com/pohlai88/AIBOS-PLATFORM/internal/services"
	"github.com/pohlai88/AIBOS-PLATFORM/internal/shared/config"
	"github.com/pohlai88/AIBOS-PLATFORM/internal/shared/utils"

	_ "github.com/pohlai88/AIBOS-PLATFORM/cmd/ocr-api/docs"
)

// @title AIBOS Tesseract OCR API
// @version 1.0
// @description HTTP API that extracts text and word layout from images and PDF documents with Tesseract
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@aibos-platform.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()

	// Init logger
	utils.InitLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("🚀 Starting ocr-api")

	// Init OCR engine (multi-engine support)
	var engine ocr.Engine
	switch cfg.OCREngine {
	case "cli":
		engine = ocr.NewCLIEngine(cfg.TesseractPath, cfg.TesseractLanguage)
	default:
		// Default to the in-process gosseract bindings
		engine = ocr.NewGosseractEngine(cfg.TesseractLanguage)
	}
	engineService := ocr.NewService(engine)

	// Init OCR service
	ocrService := services.NewOCRService(engineService, cfg.PopplerPath)
	log.Info().
		Str("engine", engineService.GetEngineName()).
		Str("language", cfg.TesseractLanguage).
		Msg("🔍 OCR engine ready")

	// Init handlers
	ocrHandler := handlers.NewOCRHandler(ocrService)
	healthHandler := handlers.NewHealthHandler(ocrService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName:   "AIBOS Tesseract OCR",
		BodyLimit: cfg.MaxUploadMB * 1024 * 1024,
	})

	// Middleware
	app.Use(cors.New())
	app.Use(recover.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/", healthHandler.GetRoot)
	app.Get("/health", healthHandler.GetHealth)

	// OCR routes
	app.Post("/ocr", ocrHandler.ProcessOCR)
	app.Post("/ocr-with-layout", ocrHandler.ProcessOCRWithLayout)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("✅ ocr-api running")
	log.Info().Str("url", "http://localhost:"+port+"/swagger/").Msg("📄 Swagger UI")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
