package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// GosseractEngine implements OCR through the gosseract Tesseract bindings.
// Each recognition pass uses a fresh client so concurrent requests and the
// two passes of a single request stay independent.
type GosseractEngine struct {
	language string
}

// NewGosseractEngine creates a new gosseract-backed engine
// language can be "eng", "ind" (Indonesian), or "eng+ind" for both
func NewGosseractEngine(language string) *GosseractEngine {
	if language == "" {
		language = "eng"
	}

	return &GosseractEngine{language: language}
}

func (e *GosseractEngine) newClient(imageData []byte) (*gosseract.Client, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage(e.language); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: failed to set language %q: %v", ErrEngine, e.language, err)
	}
	if err := client.SetPageSegMode(pageSegMode); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: failed to set page seg mode: %v", ErrEngine, err)
	}
	if err := client.SetImageFromBytes(imageData); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: failed to set image: %v", ErrEngine, err)
	}

	return client, nil
}

// RecognizeText extracts the plain text rendering from image data
func (e *GosseractEngine) RecognizeText(ctx context.Context, imageData []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client, err := e.newClient(imageData)
	if err != nil {
		return "", err
	}
	defer client.Close()

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: text recognition failed: %v", ErrEngine, err)
	}

	return text, nil
}

// RecognizeData extracts per-unit boxes and confidences from image data. The
// hOCR rendering carries the same page/block/paragraph/line/word hierarchy
// as Tesseract's TSV output and is parsed into the same record shape.
func (e *GosseractEngine) RecognizeData(ctx context.Context, imageData []byte) (*Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client, err := e.newClient(imageData)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	hocr, err := client.HOCRText()
	if err != nil {
		return nil, fmt.Errorf("%w: structured recognition failed: %v", ErrEngine, err)
	}

	data, err := parseHOCR(hocr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngine, err)
	}

	return data, nil
}

// Version reports the linked Tesseract library version.
func (e *GosseractEngine) Version(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	version := client.Version()
	if version == "" {
		return "", fmt.Errorf("%w: no version reported", ErrEngine)
	}

	return version, nil
}

// GetEngineName returns the name of the engine
func (e *GosseractEngine) GetEngineName() string {
	return "gosseract"
}
