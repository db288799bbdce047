package port

import "image"

// Raster is a decoded pixel buffer owned by a raster backend.
type Raster interface {
	Width() int
	Height() int
	// Scale returns a new raster resampled to the given dimensions with a bilinear filter. The receiver is left
	// untouched.
	Scale(width, height int) (Raster, error)
	// Clone returns a raster that is independent of the receiver for read-only use.
	Clone() Raster
	// Image exposes the pixels for display or encoding. Callers must not modify it.
	Image() image.Image
}

type RasterDecoder interface {
	// Decode reads and decodes the image file at path.
	Decode(path string) (Raster, error)
}
