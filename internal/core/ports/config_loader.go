package ports

import "go.trai.ch/stamp/internal/core/domain"

// ConfigLoader defines the interface for loading session options.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory and
	// returns the session options. A missing configuration file yields the
	// defaults, not an error.
	Load(cwd string) (domain.Options, error)
}
