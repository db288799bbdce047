package file

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// IsRemote reports whether source is an http(s) URL rather than a local path.
func IsRemote(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Extension returns the file extension of a local path or of the path component of a URL.
func Extension(source string) string {
	if IsRemote(source) {
		u, _ := url.Parse(source)
		return path.Ext(u.Path)
	}

	return filepath.Ext(source)
}

// DownloadFile returns the byte content of a file on a provided URL.
func DownloadFile(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		err = fmt.Errorf("error creating request %w", err)
		log.Error().Err(err).Str("url", source).Send()
		return nil, err
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		err = fmt.Errorf("error executing request %w", err)
		log.Error().Err(err).Str("url", source).Send()
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected status code on download: %d", res.StatusCode)
		log.Error().Err(err).Str("url", source).Send()
		return nil, err
	}

	buf, err := io.ReadAll(res.Body)
	if err != nil {
		err = fmt.Errorf("error reading response %w", err)
		log.Error().Err(err).Str("url", source).Send()
		return nil, err
	}

	return buf, nil
}

// SaveTempFile saves bytes to a temp location and returns the path.
func SaveTempFile(data []byte, extension string) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	log.Debug().Int("bytes", len(data)).Str("extension", extension).Msg("creating temp file")

	p := filepath.Join(os.TempDir(), id.String()+extension)

	f, err := os.Create(p)
	if err != nil {
		err = fmt.Errorf("error creating temp file %w", err)
		log.Error().Err(err).Send()
		return "", err
	}

	defer f.Close()

	if _, err := f.Write(data); err != nil {
		err = fmt.Errorf("error writing temp file %w", err)
		log.Error().Err(err).Send()
		return "", err
	}

	log.Debug().Str("path", f.Name()).Msg("created file")

	return f.Name(), nil
}

// RemoveTempFile removes a specified temporary file at the given path and logs success or failure.
func RemoveTempFile(path string) {
	err := os.Remove(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("could not clean up temp file")
		return
	}
	log.Debug().Str("path", path).Msg("cleaned up temp file")
}

// FetchToTemp downloads source into a temp file keeping its extension. The caller removes the file with
// RemoveTempFile.
func FetchToTemp(ctx context.Context, source string) (string, error) {
	data, err := DownloadFile(ctx, source)
	if err != nil {
		return "", err
	}

	return SaveTempFile(data, Extension(source))
}
