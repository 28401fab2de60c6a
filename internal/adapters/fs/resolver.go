package fs

import (
	"path/filepath"
	"slices"

	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectResolver = (*Resolver)(nil)

// Resolver expands the configured project entries into source files.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ProjectFiles resolves cfg.ProjectFiles against cfg.Root. Entries may be files, directories
// or glob patterns. Directories are walked for files with the source extension, skipping the
// cache directory.
func (r *Resolver) ProjectFiles(cfg *domain.Config) ([]string, error) {
	var ignores []string
	if cfg.CacheEnabled() {
		ignores = append(ignores, filepath.Base(cfg.CacheDir))
	}

	unique := make(map[string]struct{})
	for _, entry := range cfg.ProjectFiles {
		pattern := filepath.Join(cfg.Root, entry)
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob project path"), "path", pattern)
		}
		if len(matches) == 0 {
			return nil, zerr.With(domain.ErrProjectPathNotFound, "path", pattern)
		}

		for _, match := range matches {
			for path := range r.walker.WalkFiles(match, ignores) {
				if filepath.Ext(path) != domain.SourceExtension {
					continue
				}
				rel, err := filepath.Rel(cfg.Root, path)
				if err != nil {
					return nil, zerr.With(zerr.Wrap(err, "failed to relativize project path"), "path", path)
				}
				unique[filepath.ToSlash(rel)] = struct{}{}
			}
		}
	}

	files := make([]string, 0, len(unique))
	for f := range unique {
		files = append(files, f)
	}
	slices.Sort(files)
	return files, nil
}
