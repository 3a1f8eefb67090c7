package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// CLIEngine implements OCR by shelling out to the tesseract binary. It is
// the fallback for builds where the CGo bindings cannot be used.
type CLIEngine struct {
	tesseractPath string
	language      string
}

// NewCLIEngine creates a new CLI-backed engine
// language can be "eng", "ind" (Indonesian), or "eng+ind" for both
func NewCLIEngine(tesseractPath, language string) *CLIEngine {
	if tesseractPath == "" {
		tesseractPath = "tesseract" // Assumes tesseract is in PATH
	}
	if language == "" {
		language = "eng"
	}

	return &CLIEngine{
		tesseractPath: tesseractPath,
		language:      language,
	}
}

// run writes the image to a temp file and captures tesseract's stdout for
// the requested output format ("" for plain text, "tsv" for records).
func (e *CLIEngine) run(ctx context.Context, imageData []byte, format string) (string, error) {
	tempImagePath := filepath.Join(os.TempDir(), fmt.Sprintf("ocr_image_%s.png", uuid.NewString()))

	if err := os.WriteFile(tempImagePath, imageData, 0644); err != nil {
		return "", fmt.Errorf("failed to write temp image: %w", err)
	}
	defer os.Remove(tempImagePath)

	// tesseract input.png stdout -l eng --psm 1 [tsv]
	args := []string{tempImagePath, "stdout", "-l", e.language, "--psm", strconv.Itoa(int(pageSegMode))}
	if format != "" {
		args = append(args, format)
	}
	cmd := exec.CommandContext(ctx, e.tesseractPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: tesseract command failed: %v, output: %s", ErrEngine, err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

// RecognizeText extracts the plain text rendering from image data
func (e *CLIEngine) RecognizeText(ctx context.Context, imageData []byte) (string, error) {
	out, err := e.run(ctx, imageData, "")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}

// RecognizeData extracts per-unit boxes and confidences from image data
func (e *CLIEngine) RecognizeData(ctx context.Context, imageData []byte) (*Data, error) {
	out, err := e.run(ctx, imageData, "tsv")
	if err != nil {
		return nil, err
	}

	data, err := parseTSV(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngine, err)
	}

	return data, nil
}

// Version reports the tesseract binary version.
func (e *CLIEngine) Version(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, e.tesseractPath, "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: tesseract --version failed: %v", ErrEngine, err)
	}

	// First line looks like "tesseract 5.3.4".
	line, _, _ := strings.Cut(string(output), "\n")
	version := strings.TrimSpace(strings.TrimPrefix(line, "tesseract"))
	if version == "" {
		return "", fmt.Errorf("%w: unexpected version output: %q", ErrEngine, line)
	}

	return version, nil
}

// GetEngineName returns the name of the engine
func (e *CLIEngine) GetEngineName() string {
	return "tesseract-cli"
}
