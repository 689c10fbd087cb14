// Package toml loads Cargo manifests and lock files into domain documents.
package toml

import (
	"errors"
	"os"

	gotoml "github.com/pelletier/go-toml/v2"
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.DocumentLoader for TOML files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path and parses it as TOML.
func (l *Loader) Load(path string) (domain.Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the CLI configuration
	if err != nil {
		return domain.Document{}, zerr.With(zerr.Wrap(err, domain.ErrDocumentRead.Error()), "path", path)
	}
	return Parse(path, data)
}

// Parse parses TOML content read from path.
func Parse(path string, data []byte) (domain.Document, error) {
	var raw map[string]any
	if err := gotoml.Unmarshal(data, &raw); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrDocumentParse.Error()), "path", path)

		var decodeErr *gotoml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			wrapped = zerr.With(wrapped, "line", row)
			wrapped = zerr.With(wrapped, "column", col)
		}
		return domain.Document{}, wrapped
	}

	if raw == nil {
		raw = map[string]any{}
	}
	return domain.FromValue(raw), nil
}
