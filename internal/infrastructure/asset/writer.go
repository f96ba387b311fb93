package asset

import (
	"os"
	"path/filepath"
	"strings"
)

// FSWriter stores uploaded food and cover images on disk and hands
// back the public path they are served under.
type FSWriter struct {
	ImagesDir     string
	PublicBaseURL string
}

func NewFSWriter(imagesDir, publicBaseURL string) *FSWriter {
	return &FSWriter{ImagesDir: imagesDir, PublicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (w *FSWriter) Write(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(w.ImagesDir, 0o755); err != nil {
		return "", err
	}
	out := filepath.Join(w.ImagesDir, filepath.Base(filename))
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return "", err
	}
	return w.buildURL("/images/" + filepath.Base(filename)), nil
}

func (w *FSWriter) buildURL(path string) string {
	if w.PublicBaseURL == "" {
		return path
	}
	return w.PublicBaseURL + path
}
