package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheCorrupted is returned when a cache file exists but does not hold the expected shape.
	// It is a hard error: continuing with a malformed reference or diagnostic graph is unsound.
	ErrCacheCorrupted = zerr.New("cache file is corrupted")

	// ErrCacheReadFailed is returned when a cache file exists but cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache file")

	// ErrCacheWriteFailed is returned when a cache file cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write cache file")

	// ErrCacheEncodeFailed is returned when a cache payload cannot be serialized.
	ErrCacheEncodeFailed = zerr.New("failed to encode cache payload")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheClearFailed is returned when a cache file cannot be removed.
	ErrCacheClearFailed = zerr.New("failed to remove cache file")

	// ErrUnknownCacheKind is returned when a cache name does not match any known cache.
	ErrUnknownCacheKind = zerr.New("unknown cache kind")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file can be found.
	ErrConfigNotFound = zerr.New("could not find refcache.yaml")

	// ErrInvalidThreads is returned when the configured worker count is not positive.
	ErrInvalidThreads = zerr.New("threads must be greater than zero")

	// ErrInvalidErrorLevel is returned when the error level is outside 1 to 8.
	ErrInvalidErrorLevel = zerr.New("error level must be between 1 and 8")

	// ErrInvalidPHPVersion is returned when a PHP version target is not in MAJOR.MINOR form.
	ErrInvalidPHPVersion = zerr.New("invalid php version, expected format: MAJOR.MINOR")

	// ErrProjectPathNotFound is returned when a configured project entry matches nothing.
	ErrProjectPathNotFound = zerr.New("project path not found")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrAnalysisFailed is returned when a file analysis worker fails.
	ErrAnalysisFailed = zerr.New("analysis failed")
)
