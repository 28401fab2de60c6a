package ports

import "go.trai.ch/refcache/internal/core/domain"

// Fingerprinter computes the opaque digest of an analysis configuration.
//
//go:generate mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns the digest of every configuration input that can change analysis results.
	Fingerprint(cfg *domain.Config) domain.Fingerprint
}
