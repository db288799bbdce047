package raster

import (
	"image"

	"imgview/internal/core/port"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
)

// DrawDecoder decodes with the standard image registry and resamples with golang.org/x/image/draw.
type DrawDecoder struct{}

func NewDrawDecoder() *DrawDecoder {
	return &DrawDecoder{}
}

func (d *DrawDecoder) Decode(path string) (port.Raster, error) {
	img, err := decodeFile(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("draw failed to decode file")
		return nil, err
	}

	return &DrawRaster{img: toRGBA(img)}, nil
}

type DrawRaster struct {
	img *image.RGBA
}

func (r *DrawRaster) Width() int {
	return r.img.Bounds().Dx()
}

func (r *DrawRaster) Height() int {
	return r.img.Bounds().Dy()
}

func (r *DrawRaster) Scale(width, height int) (port.Raster, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Rect, r.img, r.img.Bounds(), draw.Src, nil)

	return &DrawRaster{img: dst}, nil
}

func (r *DrawRaster) Clone() port.Raster {
	return &DrawRaster{img: toRGBA(r.img)}
}

func (r *DrawRaster) Image() image.Image {
	return r.img
}

// toRGBA copies src into a new RGBA buffer anchored at the origin.
func toRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)

	return dst
}
