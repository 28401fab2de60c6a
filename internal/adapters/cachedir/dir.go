// Package cachedir resolves the optional cache directory into a filesystem handle.
// A nil handle means caching is disabled and every cache operation becomes a no-op.
package cachedir

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// Open returns a filesystem rooted at path, creating the directory when needed.
// An empty path returns a nil filesystem.
func Open(path string) (billy.Filesystem, error) {
	if path == "" {
		return nil, nil
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", path)
	}

	return osfs.New(path), nil
}

// Existing returns a filesystem rooted at path only if the directory already exists.
// It never creates anything, so it is safe for inspection.
func Existing(path string) (billy.Filesystem, error) {
	if path == "" {
		return nil, nil
	}

	path = filepath.Clean(path)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(fs.ErrInvalid, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	return osfs.New(path), nil
}
