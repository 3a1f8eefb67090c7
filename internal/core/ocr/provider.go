package ocr

import (
	"context"
	"errors"

	"github.com/otiai10/gosseract/v2"
)

// ErrEngine covers every Tesseract failure: missing binary or library,
// crashed recognition run, or output that cannot be parsed.
var ErrEngine = errors.New("ocr engine failure")

// pageSegMode is the fixed segmentation configuration for every recognition
// pass: fully automatic page segmentation with orientation and script
// detection (--psm 1).
const pageSegMode = gosseract.PSM_AUTO_OSD

// Unit levels as emitted by Tesseract.
const (
	LevelPage      = 1
	LevelBlock     = 2
	LevelParagraph = 3
	LevelLine      = 4
	LevelWord      = 5
)

// Engine interface for OCR engines
type Engine interface {
	// RecognizeText extracts the plain text rendering from image data
	RecognizeText(ctx context.Context, imageData []byte) (string, error)

	// RecognizeData extracts per-unit boxes and confidences from image data
	RecognizeData(ctx context.Context, imageData []byte) (*Data, error)

	// Version reports the Tesseract version in use
	Version(ctx context.Context) (string, error)

	// GetEngineName returns the engine name
	GetEngineName() string
}

// Data holds structured recognition output as parallel arrays, one entry per
// detected unit in reading order. Conf is -1 for every non-word unit.
type Data struct {
	Level  []int
	Left   []int
	Top    []int
	Width  []int
	Height []int
	Conf   []int
	Text   []string
}

// Len returns the number of recognized units.
func (d *Data) Len() int {
	return len(d.Text)
}

// add is the single construction path, keeping all arrays the same length.
func (d *Data) add(level, left, top, width, height, conf int, text string) {
	d.Level = append(d.Level, level)
	d.Left = append(d.Left, left)
	d.Top = append(d.Top, top)
	d.Width = append(d.Width, width)
	d.Height = append(d.Height, height)
	d.Conf = append(d.Conf, conf)
	d.Text = append(d.Text, text)
}

// Service wraps the configured OCR engine
type Service struct {
	engine Engine
}

// NewService creates a new OCR service with the given engine
func NewService(engine Engine) *Service {
	return &Service{engine: engine}
}

// Recognize runs both recognition passes: the plain text rendering first,
// then the structured per-unit records. The passes are independent engine
// invocations and their outputs are never reconciled with each other.
func (s *Service) Recognize(ctx context.Context, imageData []byte) (string, *Data, error) {
	text, err := s.engine.RecognizeText(ctx, imageData)
	if err != nil {
		return "", nil, err
	}

	data, err := s.engine.RecognizeData(ctx, imageData)
	if err != nil {
		return "", nil, err
	}

	return text, data, nil
}

// RecognizeData runs only the structured recognition pass.
func (s *Service) RecognizeData(ctx context.Context, imageData []byte) (*Data, error) {
	return s.engine.RecognizeData(ctx, imageData)
}

// Version reports the Tesseract version of the configured engine.
func (s *Service) Version(ctx context.Context) (string, error) {
	return s.engine.Version(ctx)
}

// GetEngineName returns the name of the current engine
func (s *Service) GetEngineName() string {
	return s.engine.GetEngineName()
}
