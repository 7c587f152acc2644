// Package config provides the configuration loader for stamp.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working
// directory.
const DefaultFilename = "stamp.yaml"

var _ ports.ConfigLoader = (*FileLoader)(nil)

// FileLoader implements ports.ConfigLoader using a YAML file. The file is a
// flat mapping of option keys; unknown keys are preserved in the options
// extension store.
type FileLoader struct {
	Filename string
}

// NewFileLoader creates a FileLoader for the default filename.
func NewFileLoader() *FileLoader {
	return &FileLoader{Filename: DefaultFilename}
}

// Load reads the configuration from the given working directory. A missing
// file yields the defaults; a malformed file is an error.
func (l *FileLoader) Load(cwd string) (domain.Options, error) {
	opts := domain.DefaultOptions()

	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return opts, nil
		}
		return opts, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return opts, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	return opts.With(raw), nil
}
