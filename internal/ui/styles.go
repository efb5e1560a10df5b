package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for CLI output
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - high confidence, success
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - medium confidence
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info, notes
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Shared styles for CLI output
var (
	// TitleStyle is for section headers ("Discovered printers")
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// HeaderStyle is for table column headers
	HeaderStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Bold(true)

	// LocatorStyle is for transport locators (/dev/usb/lp0)
	LocatorStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// NoteStyle is for evidence notes under a candidate
	NoteStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// ErrorStyle is for failure messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// SuccessStyle is for confirmation messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// SelectedStyle marks the cursor row in the interactive picker
	SelectedStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)
)

// ConfidenceStyle colors a confidence score by how trustworthy it is:
// green for strong evidence, orange for plausible, gray for weak.
func ConfidenceStyle(confidence int) lipgloss.Style {
	switch {
	case confidence >= 80:
		return lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	case confidence >= 60:
		return lipgloss.NewStyle().Foreground(WarningColor)
	default:
		return lipgloss.NewStyle().Foreground(MutedColor)
	}
}
