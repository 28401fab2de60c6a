package domain

const (
	// DefaultCacheDirName is the name of the cache directory used when the config does not name one.
	DefaultCacheDirName = ".refcache"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "refcache.yaml"

	// SourceExtension selects the files analyzed in project directories.
	SourceExtension = ".php"

	// TempFileSuffix marks in-flight cache writes. Leftovers are removed by a cache clear.
	TempFileSuffix = ".tmp-"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
