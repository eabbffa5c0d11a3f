package ports

import "go.trai.ch/cbuild/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory.
	// A missing config file yields the defaults.
	Load(cwd string) (*domain.Config, error)
}
