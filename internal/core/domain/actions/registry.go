package actions

import "imgview/internal/core/domain"

// NewDefaultRegistry returns a registry holding every built-in action under its usual name.
func NewDefaultRegistry() *domain.ActionRegistry {
	registry := &domain.ActionRegistry{}

	registry.Register(NewZoomInAction("zoom_in"))
	registry.Register(NewZoomOutAction("zoom_out"))
	registry.Register(NewFitAction("fit"))
	registry.Register(NewOriginalAction("original"))
	registry.Register(NewSetAction("set"))

	return registry
}
