// Package style holds the colors, icons and layout shared by the logger and the status output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors by meaning.
var (
	Muted   = lipgloss.Color("#667085")
	Success = lipgloss.Color("#22A06B")
	Failure = lipgloss.Color("#D93025")
	Caution = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Circle  = "○"
)

// CacheName pads a cache file name to the widest one so status columns line up.
var CacheName = lipgloss.NewStyle().Width(30)
