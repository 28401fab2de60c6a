package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager matches zerr.Error, which can report its own message without the chain.
type messager interface {
	Message() string
}

type metadater interface {
	Metadata() map[string]any
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries flattens an error chain into one entry per message.
// Joined errors contribute each branch in order. zerr wrappers with an empty message only carry
// metadata, which is attached to the next entry.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	pending := map[string]any{}

	var walk func(error)
	walk = func(current error) {
		for current != nil {
			if joined, ok := current.(interface{ Unwrap() []error }); ok {
				for _, e := range joined.Unwrap() {
					walk(e)
				}
				return
			}

			if md, ok := current.(metadater); ok {
				maps.Copy(pending, md.Metadata())
			}

			m, ok := current.(messager)
			if !ok {
				entries = append(entries, errorEntry{message: current.Error(), metadata: take(&pending)})
				return
			}
			if m.Message() != "" {
				entries = append(entries, errorEntry{message: m.Message(), metadata: take(&pending)})
			}
			current = errors.Unwrap(current)
		}
	}
	walk(err)

	if len(pending) > 0 && len(entries) > 0 {
		last := &entries[len(entries)-1]
		if last.metadata == nil {
			last.metadata = map[string]any{}
		}
		maps.Copy(last.metadata, pending)
	}
	return entries
}

func take(pending *map[string]any) map[string]any {
	if len(*pending) == 0 {
		return nil
	}
	md := *pending
	*pending = map[string]any{}
	return md
}

// formatErrorEntries renders the entries as a headline followed by an indented cause list.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string
	for i, entry := range entries {
		text := strings.Split(entry.message+formatMetadata(entry.metadata), "\n")

		indent := "      "
		switch i {
		case 0:
			lines = append(lines, "Error: "+text[0])
			indent = "       "
		case 1:
			lines = append(lines, "", "  Caused by:")
			fallthrough
		default:
			lines = append(lines, "    → "+text[0])
		}
		for _, line := range text[1:] {
			lines = append(lines, indent+line)
		}
	}
	return strings.Join(lines, "\n")
}

func formatMetadata(md map[string]any) string {
	if len(md) == 0 {
		return ""
	}
	parts := make([]string, 0, len(md))
	for _, k := range slices.Sorted(maps.Keys(md)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, md[k]))
	}
	return " (" + strings.Join(parts, " ") + ")"
}
