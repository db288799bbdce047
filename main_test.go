package main

import (
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"imgview/internal/core/domain"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags(t *testing.T) {
	flags := pflag.NewFlagSet("imgview", pflag.ContinueOnError)
	flags.String("backend", "imaging", "")
	flags.Int("canvas-width", 1280, "")
	flags.Int("canvas-height", 720, "")
	require.NoError(t, flags.Parse([]string{"--backend", "draw", "--canvas-width", "640"}))

	v := viper.New()
	require.NoError(t, bindFlags(v, flags))
	assert.Equal(t, "draw", v.GetString("viewer.backend"))
	assert.Equal(t, 640, v.GetInt("viewer.canvas_width"))
	assert.Equal(t, 720, v.GetInt("viewer.canvas_height"))
}

func TestBindFlagsMissingFlag(t *testing.T) {
	flags := pflag.NewFlagSet("imgview", pflag.ContinueOnError)
	flags.String("backend", "imaging", "")

	err := bindFlags(viper.New(), flags)
	assert.ErrorContains(t, err, "canvas-width")
}

func serveTestImage(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = png.Encode(w, image.NewRGBA(image.Rect(0, 0, 80, 60)))
	}))
	t.Cleanup(srv.Close)

	return srv.URL + "/photo.png"
}

func TestRunRemovesDownloadOnFailure(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)
	t.Cleanup(viper.Reset)

	viper.Set("viewer.download_timeout", "5s")
	viper.Set("viewer.preview_size", "preview_300")

	err := run(context.Background(), serveTestImage(t), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunRemovesDownloadOnSuccess(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)
	t.Cleanup(viper.Reset)

	viper.Set("viewer.download_timeout", "5s")
	viper.Set("viewer.canvas_width", 40)
	viper.Set("viewer.canvas_height", 40)

	require.NoError(t, run(context.Background(), serveTestImage(t), []string{"zoom_in"}))

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
