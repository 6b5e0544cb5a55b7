package ports

import "go.trai.ch/extrepo/internal/core/domain"

// ConfigLoader defines the interface for loading the generator configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. An empty path looks for the default
	// config file in the working directory and falls back to built-in defaults.
	Load(path string) (*domain.Config, error)
}
