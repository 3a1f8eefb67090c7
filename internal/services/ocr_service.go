package services

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/pohlai88/AIBOS-PLATFORM/internal/core/imaging"
	"github.com/pohlai88/AIBOS-PLATFORM/internal/core/ocr"
)

// currencySymbols drive the has_currency metadata flag.
const currencySymbols = "$£€¥"

// OCRService runs the full pipeline: normalize the upload, invoke the
// engine, shape the result.
type OCRService struct {
	ocrService  *ocr.Service
	popplerPath string
}

// NewOCRService creates a new OCR pipeline service
func NewOCRService(ocrService *ocr.Service, popplerPath string) *OCRService {
	return &OCRService{
		ocrService:  ocrService,
		popplerPath: popplerPath,
	}
}

// Metadata summarizes a recognized document.
type Metadata struct {
	CharCount   int    `json:"char_count"`
	WordCount   int    `json:"word_count"`
	LineCount   int    `json:"line_count"`
	HasNumbers  bool   `json:"has_numbers"`
	HasCurrency bool   `json:"has_currency"`
	ImageSize   string `json:"image_size"`
}

// AggregateReport is the full-document result: plain text plus summary stats.
type AggregateReport struct {
	Text       string
	Confidence float64
	Metadata   Metadata
}

// BBox is a bounding box in pixel coordinates.
type BBox struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LayoutEntry is one retained word with its position and confidence.
type LayoutEntry struct {
	Text       string `json:"text"`
	Confidence int    `json:"confidence"`
	BBox       BBox   `json:"bbox"`
	Level      int    `json:"level"`
}

// LayoutReport is the per-word layout result.
type LayoutReport struct {
	Results    []LayoutEntry
	TotalWords int
}

// ProcessDocument runs both recognition passes over an upload and builds the
// aggregate report.
func (s *OCRService) ProcessDocument(ctx context.Context, fileData []byte, contentType string) (*AggregateReport, error) {
	raster, err := s.normalize(ctx, fileData, contentType)
	if err != nil {
		return nil, err
	}

	text, data, err := s.ocrService.Recognize(ctx, raster.PNG)
	if err != nil {
		return nil, err
	}

	report := &AggregateReport{
		Text:       text,
		Confidence: averageConfidence(data),
		Metadata:   buildMetadata(text, raster),
	}

	log.Ctx(ctx).Info().
		Int("chars", report.Metadata.CharCount).
		Float64("confidence", report.Confidence).
		Bool("has_numbers", report.Metadata.HasNumbers).
		Bool("has_currency", report.Metadata.HasCurrency).
		Msg("OCR completed")

	return report, nil
}

// ProcessLayout runs the structured pass only and keeps every confident,
// non-blank word in reading order.
func (s *OCRService) ProcessLayout(ctx context.Context, fileData []byte, contentType string) (*LayoutReport, error) {
	raster, err := s.normalize(ctx, fileData, contentType)
	if err != nil {
		return nil, err
	}

	data, err := s.ocrService.RecognizeData(ctx, raster.PNG)
	if err != nil {
		return nil, err
	}

	report := shapeLayout(data)
	log.Ctx(ctx).Info().Int("elements", report.TotalWords).Msg("layout OCR completed")

	return report, nil
}

// Version reports the engine's Tesseract version.
func (s *OCRService) Version(ctx context.Context) (string, error) {
	return s.ocrService.Version(ctx)
}

// GetEngineName returns the active engine name
func (s *OCRService) GetEngineName() string {
	return s.ocrService.GetEngineName()
}

func (s *OCRService) normalize(ctx context.Context, fileData []byte, contentType string) (*imaging.Raster, error) {
	if contentType == "application/pdf" {
		log.Ctx(ctx).Info().Msg("converting PDF to image")
	}

	raster, err := imaging.Normalize(ctx, fileData, contentType, s.popplerPath)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().Str("size", raster.Size()).Str("mode", raster.Mode).Msg("image decoded")
	return raster, nil
}

// averageConfidence is the mean confidence over countable units, rounded to
// two decimals. Units reporting the -1 sentinel don't count; with no
// countable units at all the confidence is 0.
func averageConfidence(data *ocr.Data) float64 {
	sum, n := 0, 0
	for _, conf := range data.Conf {
		if conf == -1 {
			continue
		}
		sum += conf
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(n)*100) / 100
}

func buildMetadata(text string, raster *imaging.Raster) Metadata {
	return Metadata{
		CharCount:   utf8.RuneCountInString(text),
		WordCount:   len(strings.Fields(text)),
		LineCount:   len(strings.Split(text, "\n")),
		HasNumbers:  strings.ContainsAny(text, "0123456789"),
		HasCurrency: strings.ContainsAny(text, currencySymbols),
		ImageSize:   raster.Size(),
	}
}

func shapeLayout(data *ocr.Data) *LayoutReport {
	// Keep only units that carry a real confidence and visible text. The
	// original text is preserved untrimmed; trimming is for the filter only.
	results := []LayoutEntry{}
	for i := 0; i < data.Len(); i++ {
		if data.Conf[i] == -1 || strings.TrimSpace(data.Text[i]) == "" {
			continue
		}
		results = append(results, LayoutEntry{
			Text:       data.Text[i],
			Confidence: data.Conf[i],
			BBox: BBox{
				Left:   data.Left[i],
				Top:    data.Top[i],
				Width:  data.Width[i],
				Height: data.Height[i],
			},
			Level: data.Level[i],
		})
	}

	return &LayoutReport{Results: results, TotalWords: len(results)}
}
