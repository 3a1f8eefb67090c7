package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // Register decoders
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrUnsupportedImage means the uploaded bytes are not a decodable raster image.
	ErrUnsupportedImage = errors.New("unsupported image format")

	// ErrUnsupportedDocument means the uploaded PDF has no renderable first page.
	ErrUnsupportedDocument = errors.New("unsupported document")
)

// Raster is a decoded page image ready for recognition.
type Raster struct {
	Image  image.Image
	PNG    []byte // canonical PNG encoding handed to the engine
	Width  int
	Height int
	Mode   string // color mode (RGB, RGBA, L, P, CMYK, ...)
}

// Decode turns uploaded bytes into a Raster. PNG, JPEG, GIF, BMP, TIFF and
// WEBP are accepted. The image is never resized, rotated or color-converted.
func Decode(data []byte) (*Raster, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	pngData := data
	if format != "png" {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode png: %w", err)
		}
		pngData = buf.Bytes()
	}

	bounds := img.Bounds()
	return &Raster{
		Image:  img,
		PNG:    pngData,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Mode:   colorMode(img),
	}, nil
}

// Normalize routes an upload to the right decoder: PDFs get their first page
// rasterized, everything else must be a raster image already.
func Normalize(ctx context.Context, data []byte, contentType, popplerPath string) (*Raster, error) {
	if contentType == "application/pdf" {
		return RasterizeFirstPage(ctx, data, popplerPath)
	}
	return Decode(data)
}

// Size returns the dimensions as "WIDTHxHEIGHT".
func (r *Raster) Size() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

func colorMode(img image.Image) string {
	switch img.(type) {
	case *image.Gray:
		return "L"
	case *image.Gray16:
		return "I;16"
	case *image.Paletted:
		return "P"
	case *image.CMYK:
		return "CMYK"
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		return "RGBA"
	case *image.YCbCr:
		return "RGB"
	default:
		return "RGB"
	}
}
