// Package manifest persists the asset library as a flat JSON file.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store reads and writes the manifest file: a single JSON object keyed by
// each record's original path.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load populates lib from the manifest at path. A missing, unreadable, empty
// or malformed manifest is treated as "no manifest present": lib is left
// untouched and no error is returned.
func (s *Store) Load(path string, lib *domain.Library) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(path)) //nolint:gosec // Path is provided by trusted caller
	if err != nil || len(data) == 0 {
		return nil
	}

	var records map[string]domain.AssetRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}

	for original, rec := range records {
		if rec.Original == "" {
			rec.Original = original
		}
		lib.Put(rec)
	}
	return nil
}

// Save serializes the full record set of lib to path, creating parent
// directories as needed. An empty path disables persistence and makes Save a
// no-op.
func (s *Store) Save(path string, lib *domain.Library) error {
	if path == "" {
		return nil
	}

	data, err := json.MarshalIndent(lib.All(), "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create manifest directory"), "dir", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", path)
	}

	return nil
}
