package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	Env               string
	OCREngine         string
	TesseractLanguage string
	TesseractPath     string
	PopplerPath       string
	MaxUploadMB       int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:              os.Getenv("PORT"),
		Env:               os.Getenv("ENV"),
		OCREngine:         os.Getenv("OCR_ENGINE"),
		TesseractLanguage: os.Getenv("TESSERACT_LANGUAGE"),
		TesseractPath:     os.Getenv("TESSERACT_PATH"),
		PopplerPath:       os.Getenv("PDFTOPPM_PATH"),
		MaxUploadMB:       20,
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.OCREngine == "" {
		cfg.OCREngine = "gosseract"
	}
	if cfg.TesseractLanguage == "" {
		cfg.TesseractLanguage = "eng"
	}
	if cfg.TesseractPath == "" {
		cfg.TesseractPath = "tesseract"
	}
	if cfg.PopplerPath == "" {
		cfg.PopplerPath = "pdftoppm"
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		if mb, err := strconv.Atoi(v); err == nil && mb > 0 {
			cfg.MaxUploadMB = mb
		}
	}

	return cfg
}
