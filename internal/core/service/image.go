package service

import (
	"fmt"
	"math"

	"imgview/internal/core/domain"
	"imgview/internal/core/port"
)

// Image holds a full resolution raster and the preview derived from it. It is not safe for concurrent use.
type Image struct {
	original port.Raster
	preview  port.Raster
}

// LoadImage decodes the file at path. The preview starts out as a copy of the original.
func LoadImage(decoder port.RasterDecoder, path string) (*Image, error) {
	original, err := decoder.Decode(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", domain.ErrDecode, path, err)
	}

	return &Image{
		original: original,
		preview:  original.Clone(),
	}, nil
}

// Bounds returns the dimensions of the original image.
func (i *Image) Bounds() (int, int) {
	return i.original.Width(), i.original.Height()
}

func (i *Image) Preview() port.Raster {
	return i.preview
}

// RecomputePreview replaces the preview according to size. On failure the previous preview is kept.
func (i *Image) RecomputePreview(size domain.PreviewSize) error {
	if size.Kind() == domain.OriginalSize {
		i.preview = i.original.Clone()
		return nil
	}

	width, height := TargetDimensions(i.original.Width(), i.original.Height(), size)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %s gives %dx%d", domain.ErrScaleFailure, size, width, height)
	}

	preview, err := i.original.Scale(width, height)
	if err != nil {
		return fmt.Errorf("%w to %dx%d: %w", domain.ErrScaleFailure, width, height, err)
	}

	i.preview = preview
	return nil
}

// TargetDimensions computes the preview dimensions of a width x height image, rounding down. A BestFit size fills
// the canvas exactly on its constraining axis and scales the other axis with the aspect ratio kept.
func TargetDimensions(width, height int, size domain.PreviewSize) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}

	if size.Kind() == domain.BestFit {
		canvasWidth, canvasHeight := size.Canvas()
		return fitInside(int64(width), int64(height), int64(canvasWidth), int64(canvasHeight))
	}

	scale := size.Factor()
	return int(math.Floor(float64(width) * scale)), int(math.Floor(float64(height) * scale))
}

// fitInside is done in integers: a float ratio multiplied back by the source size can land just below the canvas.
func fitInside(width, height, canvasWidth, canvasHeight int64) (int, int) {
	if canvasWidth*height <= canvasHeight*width {
		return int(canvasWidth), int(floorDiv(canvasWidth*height, width))
	}

	return int(floorDiv(canvasHeight*width, height)), int(canvasHeight)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
