package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/refcache/internal/build"
	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher computes configuration fingerprints.
type Hasher struct {
	version string
}

// NewHasher creates a Hasher that mixes the tool version into every fingerprint.
func NewHasher() *Hasher {
	return &Hasher{version: build.Version}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return hasher.Sum64(), nil
}

// Fingerprint digests everything that can change analysis results: the raw config file, the
// tool version, the effective settings after flag overrides and the content of every plugin.
func (h *Hasher) Fingerprint(cfg *domain.Config) domain.Fingerprint {
	hasher := xxhash.New()

	_, _ = hasher.Write(cfg.Source)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(h.version)
	_, _ = hasher.Write([]byte{0})

	h.hashSettings(cfg, hasher)
	h.hashPlugins(cfg, hasher)

	return domain.Fingerprint(fmt.Sprintf("%016x", hasher.Sum64()))
}

// hashSettings hashes the effective settings. Thread count and paths are excluded: they do not
// change results.
func (h *Hasher) hashSettings(cfg *domain.Config, hasher *xxhash.Digest) {
	for _, field := range []string{
		cfg.PHPVersion,
		strconv.Itoa(cfg.ErrorLevel),
		strconv.FormatBool(cfg.FindUnusedCode),
		strconv.FormatBool(cfg.StrictBinaryOperands),
	} {
		_, _ = hasher.WriteString(field)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator
}

// hashPlugins hashes plugin paths in config order with their content hash. A plugin that cannot
// be read contributes only its path, so it changes the fingerprint once it appears.
func (h *Hasher) hashPlugins(cfg *domain.Config, hasher *xxhash.Digest) {
	for _, plugin := range cfg.Plugins {
		_, _ = hasher.WriteString(plugin)
		_, _ = hasher.Write([]byte{0})

		path := plugin
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.Root, path)
		}
		if sum, err := h.ComputeFileHash(path); err == nil {
			_ = binary.Write(hasher, binary.LittleEndian, sum)
		}
	}
	_, _ = hasher.Write([]byte{0})
}
