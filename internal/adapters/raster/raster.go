package raster

import (
	"fmt"
	"image"
	"os"

	"imgview/internal/core/domain"
	"imgview/internal/core/port"

	// Formats beyond the standard library.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	BackendImaging = "imaging"
	BackendDraw    = "draw"
	BackendNfnt    = "nfnt"
)

// New returns the decoder of the named backend.
func New(backend string) (port.RasterDecoder, error) {
	switch backend {
	case BackendImaging, "":
		return NewImagingDecoder(), nil
	case BackendDraw:
		return NewDrawDecoder(), nil
	case BackendNfnt:
		return NewNfntDecoder(), nil
	default:
		return nil, fmt.Errorf("unknown raster backend %q", backend)
	}
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid dimensions %dx%d", domain.ErrScaleFailure, width, height)
	}

	return nil
}

// decodeFile decodes path with the registered image formats.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening image %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding image %w", err)
	}

	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image %s has no pixels", path)
	}

	return img, nil
}
