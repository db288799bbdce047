package actions

import (
	"imgview/internal/core/domain"
)

type ZoomInAction struct {
	name string
}

func NewZoomInAction(name string) *ZoomInAction {
	return &ZoomInAction{name: name}
}

func (a *ZoomInAction) GetName() string {
	return a.name
}

func (a *ZoomInAction) Apply(current domain.PreviewSize, _ string) (domain.PreviewSize, error) {
	return current.Larger()
}

type ZoomOutAction struct {
	name string
}

func NewZoomOutAction(name string) *ZoomOutAction {
	return &ZoomOutAction{name: name}
}

func (a *ZoomOutAction) GetName() string {
	return a.name
}

func (a *ZoomOutAction) Apply(current domain.PreviewSize, _ string) (domain.PreviewSize, error) {
	return current.Smaller()
}
