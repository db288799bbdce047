package raster

import (
	"fmt"
	"image"

	"imgview/internal/core/port"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
)

// ImagingDecoder decodes with disintegration/imaging, applying the EXIF orientation of JPEG files.
type ImagingDecoder struct{}

func NewImagingDecoder() *ImagingDecoder {
	return &ImagingDecoder{}
}

func (d *ImagingDecoder) Decode(path string) (port.Raster, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("imaging failed to decode file")
		return nil, fmt.Errorf("error decoding image %w", err)
	}

	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image %s has no pixels", path)
	}

	log.Debug().Str("path", path).Int("width", img.Bounds().Dx()).Int("height", img.Bounds().Dy()).
		Msg("decoded image")

	return &ImagingRaster{img: imaging.Clone(img)}, nil
}

type ImagingRaster struct {
	img *image.NRGBA
}

func (r *ImagingRaster) Width() int {
	return r.img.Bounds().Dx()
}

func (r *ImagingRaster) Height() int {
	return r.img.Bounds().Dy()
}

func (r *ImagingRaster) Scale(width, height int) (port.Raster, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	return &ImagingRaster{img: imaging.Resize(r.img, width, height, imaging.Linear)}, nil
}

func (r *ImagingRaster) Clone() port.Raster {
	return &ImagingRaster{img: imaging.Clone(r.img)}
}

func (r *ImagingRaster) Image() image.Image {
	return r.img
}
