package actions

import (
	"errors"
	"fmt"

	"imgview/internal/core/domain"
)

// FitAction switches to fit-to-screen. The canvas is filled in by the viewer.
type FitAction struct {
	name string
}

func NewFitAction(name string) *FitAction {
	return &FitAction{name: name}
}

func (a *FitAction) GetName() string {
	return a.name
}

func (a *FitAction) Apply(_ domain.PreviewSize, _ string) (domain.PreviewSize, error) {
	return domain.NewBestFit(0, 0), nil
}

type OriginalAction struct {
	name string
}

func NewOriginalAction(name string) *OriginalAction {
	return &OriginalAction{name: name}
}

func (a *OriginalAction) GetName() string {
	return a.name
}

func (a *OriginalAction) Apply(_ domain.PreviewSize, _ string) (domain.PreviewSize, error) {
	return domain.NewOriginalSize(), nil
}

// SetAction jumps to the preview size named by a code, e.g. "set preview_50".
type SetAction struct {
	name string
}

func NewSetAction(name string) *SetAction {
	return &SetAction{name: name}
}

func (a *SetAction) GetName() string {
	return a.name
}

func (a *SetAction) Apply(_ domain.PreviewSize, args string) (domain.PreviewSize, error) {
	if args == "" {
		return domain.PreviewSize{}, errors.New("usage: set <code>")
	}

	size, err := domain.PreviewSizeFromCode(args)
	if err != nil {
		return domain.PreviewSize{}, fmt.Errorf("failed to set preview size: %w", err)
	}

	return size, nil
}
