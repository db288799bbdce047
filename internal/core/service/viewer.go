package service

import (
	"fmt"

	"imgview/internal/core/domain"
	"imgview/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Viewer keeps the preview size and canvas that Image itself does not remember, and re-renders the preview
// whenever either of them changes.
type Viewer struct {
	image        *Image
	registry     port.ActionRegistry
	size         domain.PreviewSize
	canvasWidth  int
	canvasHeight int
}

func NewViewer(image *Image, registry port.ActionRegistry, size domain.PreviewSize) *Viewer {
	return &Viewer{image: image, registry: registry, size: size}
}

func (v *Viewer) Size() domain.PreviewSize {
	return v.size
}

func (v *Viewer) Preview() port.Raster {
	return v.image.Preview()
}

// SetCanvas records the space available for the preview. The preview is only recomputed when it depends on the
// canvas, i.e. in fit-to-screen mode.
func (v *Viewer) SetCanvas(width, height int) error {
	v.canvasWidth, v.canvasHeight = width, height

	log.Debug().Int("width", width).Int("height", height).Msg("canvas changed")

	if !fitsCanvas(v.size) {
		return nil
	}

	return v.Refresh()
}

// Refresh recomputes the preview from the current size and canvas.
func (v *Viewer) Refresh() error {
	return v.apply(v.size)
}

// Perform runs an action such as "zoom_in" or "set preview_50". The new size is kept only if the preview could be
// rendered with it.
func (v *Viewer) Perform(input string) error {
	name := domain.ParseAction(input)
	l := log.With().Str("action", name).Str("size", v.size.String()).Logger()

	action, err := v.registry.Get(name)
	if err != nil {
		l.Debug().Err(err).Msg("no handler for action")
		return fmt.Errorf("unknown action %q: %w", name, err)
	}

	next, err := action.Apply(v.size, domain.ParseActionArgs(input))
	if err != nil {
		l.Debug().Err(err).Msg("action rejected")
		return err
	}

	if err := v.apply(next); err != nil {
		l.Warn().Err(err).Str("next", next.String()).Msg("failed to render preview")
		return err
	}

	l.Debug().Str("next", next.String()).Msg("action performed")
	return nil
}

func (v *Viewer) apply(size domain.PreviewSize) error {
	resolved := size
	if fitsCanvas(size) {
		resolved = size.FitTo(v.canvasWidth, v.canvasHeight)
	}

	if err := v.image.RecomputePreview(resolved); err != nil {
		return err
	}

	v.size = size
	return nil
}

// fitsCanvas reports whether size is the fit-to-screen sentinel whose box is the viewer's canvas. A BestFit with
// its own box keeps it.
func fitsCanvas(size domain.PreviewSize) bool {
	if size.Kind() != domain.BestFit {
		return false
	}

	width, height := size.Canvas()
	return width == 0 && height == 0
}

// Status returns a one line summary like "800x600 preview_50 (400x300)".
func (v *Viewer) Status() string {
	width, height := v.image.Bounds()

	code, err := v.size.Code()
	if err != nil {
		code = v.size.String()
	}

	preview := v.image.Preview()
	return fmt.Sprintf("%dx%d %s (%dx%d)", width, height, code, preview.Width(), preview.Height())
}
