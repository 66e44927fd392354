// Package styles provides the shared terminal styling for the check tools.
// The palette mirrors the classic traffic-light scheme the shell versions
// of these scripts used.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Status colors
	ColorOK   = lipgloss.Color("#1adf9a")
	ColorDown = lipgloss.Color("#f87171")
	ColorFail = lipgloss.Color("#fbbf24")

	// Column accents, matching the rich table styling of the original tools
	ColorName    = lipgloss.Color("#47d1ff")
	ColorAddress = lipgloss.Color("#c4b5fd")
	ColorKind    = lipgloss.Color("#60a5fa")
	ColorLatency = lipgloss.Color("#1adf9a")
	ColorInfo    = lipgloss.Color("#fbbf24")

	// Chrome
	ColorText      = lipgloss.Color("#e5e5e5")
	ColorTextMuted = lipgloss.Color("#8a8a8a")
	ColorBorder    = lipgloss.Color("#3f3f46")
	ColorTitle     = lipgloss.Color("#1adf9a")
)
