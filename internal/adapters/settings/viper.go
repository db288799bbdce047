package settings

import (
	"fmt"

	"imgview/internal/core/domain"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	PreviewSizeKey     = "viewer.preview_size"
	DefaultPreviewSize = "preview_fit_screen"
)

// Store persists the preview size as its code in the viper configuration.
type Store struct {
	v *viper.Viper
}

func NewStore(v *viper.Viper) *Store {
	v.SetDefault(PreviewSizeKey, DefaultPreviewSize)
	return &Store{v: v}
}

func (s *Store) PreviewSize() (domain.PreviewSize, error) {
	code := s.v.GetString(PreviewSizeKey)

	size, err := domain.PreviewSizeFromCode(code)
	if err != nil {
		return domain.PreviewSize{}, fmt.Errorf("invalid %s in config: %w", PreviewSizeKey, err)
	}

	return size, nil
}

// SavePreviewSize stores the code of size and writes it back to the config file in use, if any.
func (s *Store) SavePreviewSize(size domain.PreviewSize) error {
	code, err := size.Code()
	if err != nil {
		return err
	}

	s.v.Set(PreviewSizeKey, code)

	if s.v.ConfigFileUsed() == "" {
		log.Debug().Str("code", code).Msg("no config file in use, preview size kept in memory")
		return nil
	}

	if err := s.v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	log.Debug().Str("code", code).Str("file", s.v.ConfigFileUsed()).Msg("saved preview size")
	return nil
}
