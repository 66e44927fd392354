package styles

import "github.com/charmbracelet/lipgloss"

// Theme contains the composed styles used by the table and summary output.
var Theme = struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Notice   lipgloss.Style
	OK       lipgloss.Style
	Down     lipgloss.Style
	Fail     lipgloss.Style
	Name     lipgloss.Style
	Address  lipgloss.Style
	Kind     lipgloss.Style
	Latency  lipgloss.Style
	Info     lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Border   lipgloss.Style
	Progress lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTitle),

	Muted: lipgloss.NewStyle().
		Foreground(ColorTextMuted),

	Notice: lipgloss.NewStyle().
		Foreground(ColorFail),

	OK:   lipgloss.NewStyle().Foreground(ColorOK),
	Down: lipgloss.NewStyle().Foreground(ColorDown),
	Fail: lipgloss.NewStyle().Foreground(ColorFail),

	Name:    lipgloss.NewStyle().Foreground(ColorName),
	Address: lipgloss.NewStyle().Foreground(ColorAddress),
	Kind:    lipgloss.NewStyle().Foreground(ColorKind),
	Latency: lipgloss.NewStyle().Foreground(ColorLatency),
	Info:    lipgloss.NewStyle().Foreground(ColorInfo),

	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTitle).
		Padding(0, 1),

	Cell: lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1),

	Border: lipgloss.NewStyle().
		Foreground(ColorBorder),

	Progress: lipgloss.NewStyle().
		Foreground(ColorTextMuted),
}
