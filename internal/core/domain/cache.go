// Package domain contains the core types of the analysis cache.
package domain

// Fingerprint is an opaque digest of the active analysis configuration.
type Fingerprint string

// ReferenceGraph maps a file to the files and symbols it depends on.
// It drives the blast-radius computation in diff mode.
type ReferenceGraph map[string]Set

// MemberReferenceMap maps a method ID ("Class::method") to the methods it references.
type MemberReferenceMap map[string]Set

// FileMemberReferenceMap maps a file to the class members it uses.
type FileMemberReferenceMap map[string]Set

// DiagnosticSet holds the issues reported for each file. The order of issues per file is
// significant and preserved through a round-trip.
type DiagnosticSet map[string][]Issue

// Issue is a single diagnostic produced by the analyzer.
type Issue struct {
	Severity string `msgpack:"severity" yaml:"severity"`
	Type     string `msgpack:"type"     yaml:"type"`
	FileName string `msgpack:"file_name" yaml:"file_name"`
	FilePath string `msgpack:"file_path" yaml:"file_path"`
	Message  string `msgpack:"message"  yaml:"message"`
	Snippet  string `msgpack:"snippet"  yaml:"snippet"`
	Span     Span   `msgpack:"span"     yaml:"span"`
}

// Span locates an issue in its file.
type Span struct {
	From        int `msgpack:"from"         yaml:"from"`
	To          int `msgpack:"to"           yaml:"to"`
	SnippetFrom int `msgpack:"snippet_from" yaml:"snippet_from"`
	SnippetTo   int `msgpack:"snippet_to"   yaml:"snippet_to"`
	LineFrom    int `msgpack:"line_from"    yaml:"line_from"`
	LineTo      int `msgpack:"line_to"      yaml:"line_to"`
	ColumnFrom  int `msgpack:"column_from"  yaml:"column_from"`
	ColumnTo    int `msgpack:"column_to"    yaml:"column_to"`
}

// MethodStatus maps a method ID to an analyzer-defined fingerprint proving it was verified clean.
type MethodStatus map[string]map[string]int

// FileSymbolMap holds the derived offset maps of each file.
type FileSymbolMap map[string]FileMaps

// FileMaps is the pair of tagged span lists derived for one file.
type FileMaps struct {
	References TaggedSpans `msgpack:"references" yaml:"references"`
	Types      TaggedSpans `msgpack:"types"      yaml:"types"`
}

// TaggedSpans maps a start offset to the span beginning there.
type TaggedSpans map[int]TaggedSpan

// TaggedSpan is a span end offset and the symbol or type tag attached to it.
type TaggedSpan struct {
	End int    `msgpack:"end" yaml:"end"`
	Tag string `msgpack:"tag" yaml:"tag"`
}

// TypeCoverageStats maps a file to its type coverage counts.
type TypeCoverageStats map[string]Coverage

// Coverage counts the mixed-typed and total typed expressions of a file.
type Coverage struct {
	Mixed int `msgpack:"mixed" yaml:"mixed"`
	Total int `msgpack:"total" yaml:"total"`
}

// Percentage returns the share of non-mixed expressions, or 100 when nothing was counted.
func (c Coverage) Percentage() float64 {
	if c.Total == 0 {
		return 100
	}
	return float64(c.Total-c.Mixed) * 100 / float64(c.Total)
}

// Sum returns the element-wise sum of all per-file counts.
func (s TypeCoverageStats) Sum() Coverage {
	var total Coverage
	for _, c := range s {
		total.Mixed += c.Mixed
		total.Total += c.Total
	}
	return total
}
