package cachestore

import (
	"errors"
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// readFile returns the content of name, or false when it is missing, empty or unreadable.
func readFile(dir billy.Filesystem, name string) ([]byte, bool) {
	if dir == nil {
		return nil, false
	}
	if _, err := dir.Stat(name); err != nil {
		return nil, false
	}
	data, err := util.ReadFile(dir, name)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

// writeFile replaces name atomically: the data goes to a temporary sibling which is then renamed.
// A reader never observes a partially written file.
func writeFile(dir billy.Filesystem, name string, data []byte) (err error) {
	tmp, err := dir.TempFile(".", name+domain.TempFileSuffix)
	if err != nil {
		return writeFailed(name, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = dir.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return writeFailed(name, err)
	}
	if err = tmp.Close(); err != nil {
		return writeFailed(name, err)
	}
	if err = dir.Rename(tmpName, name); err != nil {
		return writeFailed(name, err)
	}
	if ch, ok := dir.(billy.Change); ok {
		_ = ch.Chmod(name, domain.FilePerm)
	}
	return nil
}

func removeFile(dir billy.Filesystem, name string) (bool, error) {
	err := dir.Remove(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "cache", name)
}

func writeFailed(name string, err error) error {
	return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "cache", name)
}
