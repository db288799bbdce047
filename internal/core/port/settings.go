package port

import "imgview/internal/core/domain"

type SettingsStore interface {
	// PreviewSize returns the persisted preview size, or fit-to-screen if none was saved.
	PreviewSize() (domain.PreviewSize, error)
	// SavePreviewSize persists the code of the given preview size.
	SavePreviewSize(size domain.PreviewSize) error
}
