package ports

import "go.trai.ch/refcache/internal/core/domain"

// ProjectResolver lists the files an analysis run covers.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ProjectResolver interface {
	// ProjectFiles returns the sorted source files selected by cfg, relative to cfg.Root.
	ProjectFiles(cfg *domain.Config) ([]string, error)
}
