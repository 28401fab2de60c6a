package ports

import "go.trai.ch/refcache/internal/core/domain"

// ConfigLoader defines the interface for loading the analysis configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. Relative paths in the file are resolved against
	// the directory containing it.
	Load(path string) (*domain.Config, error)

	// Discover walks up from cwd to the nearest refcache.yaml and loads it.
	// When none exists, defaults rooted at cwd are returned.
	Discover(cwd string) (*domain.Config, error)
}
