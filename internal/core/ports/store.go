package ports

import "go.trai.ch/stamp/internal/core/domain"

// ManifestStore defines the interface for persisting the asset library.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Load populates lib from the manifest at path. A missing, empty, or
	// malformed manifest is not an error and leaves lib untouched.
	Load(path string, lib *domain.Library) error

	// Save serializes the full record set of lib to path. An empty path
	// disables persistence and makes Save a no-op.
	Save(path string, lib *domain.Library) error
}
