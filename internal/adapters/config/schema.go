package config

// File represents the structure of the refcache.yaml configuration file.
type File struct {
	Version string `yaml:"version"`
	// Root is the project root, relative to the config file directory.
	Root string `yaml:"root"`
	// CacheDirectory is relative to the config file directory. Defaults to .refcache.
	CacheDirectory string `yaml:"cacheDirectory"`
	// NoCache disables every cache read and write.
	NoCache              bool     `yaml:"noCache"`
	PHPVersion           string   `yaml:"phpVersion"`
	ErrorLevel           *int     `yaml:"errorLevel"`
	Threads              *int     `yaml:"threads"`
	FindUnusedCode       bool     `yaml:"findUnusedCode"`
	StrictBinaryOperands bool     `yaml:"strictBinaryOperands"`
	ProjectFiles         []string `yaml:"projectFiles"`
	Plugins              []string `yaml:"plugins"`
}
