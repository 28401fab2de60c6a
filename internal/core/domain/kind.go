package domain

import "go.trai.ch/zerr"

// Kind identifies one persisted cache entity. It is also the discriminator written into every
// cache file so that a file can never be decoded as a different kind.
type Kind uint8

const (
	// KindConfig is the stored configuration fingerprint. It gates the other kinds and is not a mapping.
	KindConfig Kind = iota + 1
	// KindReferences is the file to file/symbol reference graph.
	KindReferences
	// KindMethodMemberReferences is the method to method reference graph.
	KindMethodMemberReferences
	// KindFileMemberReferences maps files to the class members they use.
	KindFileMemberReferences
	// KindIssues is the previous run's diagnostics keyed by file.
	KindIssues
	// KindAnalyzedMethods marks methods already verified clean.
	KindAnalyzedMethods
	// KindFileMaps holds derived per-file offset maps.
	KindFileMaps
	// KindTypeCoverage holds per-file mixed/total expression counts.
	KindTypeCoverage
)

// Policy describes how a cache kind decides whether its persisted value may be trusted.
type Policy uint8

const (
	// PolicyValidated kinds are trusted whenever they decode to the expected shape.
	PolicyValidated Policy = iota
	// PolicyGated kinds are additionally discarded whenever the configuration fingerprint changed.
	PolicyGated
	// PolicyGate is the fingerprint itself.
	PolicyGate
)

// String returns the human-readable policy name.
func (p Policy) String() string {
	switch p {
	case PolicyValidated:
		return "validated"
	case PolicyGated:
		return "gated"
	case PolicyGate:
		return "gate"
	default:
		return "unknown"
	}
}

type kindInfo struct {
	file   string
	policy Policy
	schema uint16
}

// Schema versions are bumped whenever the Go shape of a kind changes. A file written with another
// schema is treated as unavailable, not corrupted.
var kinds = map[Kind]kindInfo{
	KindConfig:                 {file: "config", policy: PolicyGate, schema: 1},
	KindReferences:             {file: "references", policy: PolicyValidated, schema: 1},
	KindMethodMemberReferences: {file: "class_method_references", policy: PolicyValidated, schema: 1},
	KindFileMemberReferences:   {file: "file_class_member_references", policy: PolicyValidated, schema: 1},
	KindIssues:                 {file: "issues", policy: PolicyValidated, schema: 1},
	KindAnalyzedMethods:        {file: "analyzed_methods", policy: PolicyGated, schema: 1},
	KindFileMaps:               {file: "file_maps", policy: PolicyGated, schema: 1},
	KindTypeCoverage:           {file: "type_coverage", policy: PolicyGated, schema: 1},
}

// AllKinds lists every cache kind in a stable order, the gate first.
func AllKinds() []Kind {
	return []Kind{
		KindConfig,
		KindReferences,
		KindMethodMemberReferences,
		KindFileMemberReferences,
		KindIssues,
		KindAnalyzedMethods,
		KindFileMaps,
		KindTypeCoverage,
	}
}

// FileName returns the fixed name of the file backing the kind inside the cache directory.
func (k Kind) FileName() string {
	return kinds[k].file
}

// Policy returns the invalidation policy of the kind.
func (k Kind) Policy() Policy {
	return kinds[k].policy
}

// Schema returns the current schema version of the kind's payload.
func (k Kind) Schema() uint16 {
	return kinds[k].schema
}

// IsMapping reports whether the kind's payload must be a mapping at the top level.
func (k Kind) IsMapping() bool {
	return k != KindConfig
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// String returns the cache file name, which doubles as the kind's public name.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return k.FileName()
}

// ParseKind resolves a cache file name to its kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range AllKinds() {
		if k.FileName() == name {
			return k, nil
		}
	}
	return 0, zerr.With(ErrUnknownCacheKind, "cache", name)
}
