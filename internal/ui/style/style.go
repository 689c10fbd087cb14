// Package style provides the colors and icons shared by the progress output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate = lipgloss.Color("#667085")
	Green = lipgloss.Color("#22A06B")
	Red   = lipgloss.Color("#D93025")
)

// Icons.
const (
	Check = "✓"
	Cross = "✗"
)
