package imaging

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// rasterDPI matches the render resolution the service has always used for
// PDF uploads.
const rasterDPI = "200"

// RasterizeFirstPage renders page one of a PDF to PNG with poppler's pdftoppm
// and decodes the result. Later pages are ignored.
func RasterizeFirstPage(ctx context.Context, data []byte, popplerPath string) (*Raster, error) {
	tempDir, err := os.MkdirTemp("", "ocr-pdf-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	pdfPath := filepath.Join(tempDir, "input.pdf")
	outPrefix := filepath.Join(tempDir, "page")

	if err := os.WriteFile(pdfPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write temp pdf: %w", err)
	}

	// pdftoppm -png -r 200 -f 1 -l 1 -singlefile input.pdf page
	cmd := exec.CommandContext(ctx, popplerPath, "-png", "-r", rasterDPI, "-f", "1", "-l", "1", "-singlefile", pdfPath, outPrefix)
	output, err := cmd.CombinedOutput()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return nil, fmt.Errorf("pdftoppm not available: %w", err)
		}
		return nil, fmt.Errorf("%w: pdftoppm failed: %v, output: %s", ErrUnsupportedDocument, err, strings.TrimSpace(string(output)))
	}

	pngData, err := os.ReadFile(outPrefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("%w: no page rendered: %v", ErrUnsupportedDocument, err)
	}

	raster, err := Decode(pngData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rendered page: %w", err)
	}
	return raster, nil
}
