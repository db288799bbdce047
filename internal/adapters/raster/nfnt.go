package raster

import (
	"image"

	"imgview/internal/core/port"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog/log"
)

// NfntDecoder decodes with the standard image registry and resamples with nfnt/resize.
type NfntDecoder struct{}

func NewNfntDecoder() *NfntDecoder {
	return &NfntDecoder{}
}

func (d *NfntDecoder) Decode(path string) (port.Raster, error) {
	img, err := decodeFile(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("nfnt failed to decode file")
		return nil, err
	}

	return &NfntRaster{img: toRGBA(img)}, nil
}

type NfntRaster struct {
	img image.Image
}

func (r *NfntRaster) Width() int {
	return r.img.Bounds().Dx()
}

func (r *NfntRaster) Height() int {
	return r.img.Bounds().Dy()
}

func (r *NfntRaster) Scale(width, height int) (port.Raster, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	return &NfntRaster{img: resize.Resize(uint(width), uint(height), r.img, resize.Bilinear)}, nil
}

func (r *NfntRaster) Clone() port.Raster {
	return &NfntRaster{img: toRGBA(r.img)}
}

func (r *NfntRaster) Image() image.Image {
	return r.img
}
