// Package config provides the configuration loader for refcache.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Discover walks up from cwd to the nearest refcache.yaml and loads it.
// Without one, defaults rooted at cwd are returned.
func (l *Loader) Discover(cwd string) (*domain.Config, error) {
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	path, err := findConfiguration(cwd)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		l.Logger.Info("no " + domain.ConfigFileName + " found, using defaults")
		return defaults(cwd), nil
	}
	return l.Load(path)
}

// Load reads the configuration file at path.
func (l *Loader) Load(path string) (*domain.Config, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	// #nosec G304 -- path is chosen by the operator
	source, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(source, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	configDir := filepath.Dir(path)
	cfg := defaults(resolvePath(configDir, file.Root))
	cfg.Path = path
	cfg.Source = source
	cfg.PHPVersion = file.PHPVersion
	cfg.FindUnusedCode = file.FindUnusedCode
	cfg.StrictBinaryOperands = file.StrictBinaryOperands
	cfg.Plugins = file.Plugins

	if file.CacheDirectory != "" {
		cfg.CacheDir = resolvePath(configDir, file.CacheDirectory)
	} else {
		cfg.CacheDir = filepath.Join(configDir, domain.DefaultCacheDirName)
	}
	if file.NoCache {
		cfg.CacheDir = ""
	}
	if file.ErrorLevel != nil {
		cfg.ErrorLevel = *file.ErrorLevel
	}
	if file.Threads != nil {
		cfg.Threads = *file.Threads
	}
	if len(file.ProjectFiles) > 0 {
		cfg.ProjectFiles = file.ProjectFiles
	}

	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func defaults(root string) *domain.Config {
	return &domain.Config{
		Root:         root,
		CacheDir:     filepath.Join(root, domain.DefaultCacheDirName),
		ErrorLevel:   domain.DefaultErrorLevel,
		Threads:      runtime.NumCPU(),
		ProjectFiles: []string{"."},
	}
}

func findConfiguration(cwd string) (string, error) {
	current := cwd
	for {
		candidate := filepath.Join(current, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", zerr.With(zerr.Wrap(fs.ErrNotExist, domain.ErrConfigNotFound.Error()), "cwd", cwd)
		}
		current = parent
	}
}

func resolvePath(base, configured string) string {
	if configured == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(base, configured))
}
