package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os/exec"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return img
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(120, 60)); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	data := buf.Bytes()

	raster, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if raster.Width != 120 || raster.Height != 60 {
		t.Errorf("dimensions = %dx%d, want 120x60", raster.Width, raster.Height)
	}
	if raster.Size() != "120x60" {
		t.Errorf("Size() = %q, want %q", raster.Size(), "120x60")
	}
	if raster.Mode != "RGBA" {
		t.Errorf("Mode = %q, want %q", raster.Mode, "RGBA")
	}
	if !bytes.Equal(raster.PNG, data) {
		t.Error("PNG input should pass through unchanged")
	}
}

func TestDecodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, testImage(80, 40), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	raster, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if raster.Width != 80 || raster.Height != 40 {
		t.Errorf("dimensions = %dx%d, want 80x40", raster.Width, raster.Height)
	}
	if raster.Mode != "RGB" {
		t.Errorf("Mode = %q, want %q", raster.Mode, "RGB")
	}
	// JPEG input must be re-encoded so the engine always receives PNG.
	if _, err := png.Decode(bytes.NewReader(raster.PNG)); err != nil {
		t.Errorf("re-encoded PNG not decodable: %v", err)
	}
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, testImage(50, 30)); err != nil {
		t.Fatalf("encode bmp: %v", err)
	}

	raster, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if raster.Width != 50 || raster.Height != 30 {
		t.Errorf("dimensions = %dx%d, want 50x30", raster.Width, raster.Height)
	}
}

func TestDecodeGrayscale(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 10, 10))
	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	raster, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if raster.Mode != "L" {
		t.Errorf("Mode = %q, want %q", raster.Mode, "L")
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("definitely not an image"))
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Fatalf("Decode() error = %v, want ErrUnsupportedImage", err)
	}
}

func TestNormalizeImage(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(20, 20)); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	raster, err := Normalize(context.Background(), buf.Bytes(), "image/png", "pdftoppm")
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if raster.Width != 20 {
		t.Errorf("width = %d, want 20", raster.Width)
	}
}

func TestNormalizeGarbagePDF(t *testing.T) {
	_, err := Normalize(context.Background(), []byte("%PDF-garbage"), "application/pdf", "pdftoppm")
	if err == nil {
		t.Fatal("Normalize() expected error for malformed pdf")
	}
}

func ensurePdftoppmAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		t.Skip("pdftoppm not installed in PATH")
	}
}

// minimalPDF builds a valid PDF with the given number of blank 200x100pt pages.
func minimalPDF(pages int) []byte {
	var buf bytes.Buffer
	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")
	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), pages))
	for i := 0; i < pages; i++ {
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 100] >>\nendobj\n", i+3))
	}

	xrefPos := buf.Len()
	buf.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)+1))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	buf.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefPos))
	return buf.Bytes()
}

func TestRasterizeFirstPage(t *testing.T) {
	ensurePdftoppmAvailable(t)

	raster, err := RasterizeFirstPage(context.Background(), minimalPDF(3), "pdftoppm")
	if err != nil {
		t.Fatalf("RasterizeFirstPage() error = %v", err)
	}
	if raster.Width <= 0 || raster.Height <= 0 {
		t.Fatalf("empty raster: %dx%d", raster.Width, raster.Height)
	}
	// The page is 2:1 landscape, so only the single rendered page can have
	// this orientation.
	if raster.Width <= raster.Height {
		t.Errorf("unexpected orientation: %s", raster.Size())
	}
}

func TestRasterizeMalformedPDF(t *testing.T) {
	ensurePdftoppmAvailable(t)

	_, err := RasterizeFirstPage(context.Background(), []byte("not a pdf at all"), "pdftoppm")
	if !errors.Is(err, ErrUnsupportedDocument) {
		t.Fatalf("RasterizeFirstPage() error = %v, want ErrUnsupportedDocument", err)
	}
}
