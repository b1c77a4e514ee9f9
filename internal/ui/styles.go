package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors - using more subtle, balanced palette
var (
	ColorPrimary   = lipgloss.Color("4")   // Blue
	ColorSecondary = lipgloss.Color("8")   // Gray
	ColorMuted     = lipgloss.Color("245") // Light gray
	ColorHighlight = lipgloss.Color("6")   // Cyan
	ColorText      = lipgloss.Color("252") // Light text
)

// Styles
var (
	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2)

	// Header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	// Item count in the header
	CountStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// Selected item style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	// Normal item style
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Position numbers next to items
	IndexStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Muted text (placeholder message, scroll indicators)
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Divider style
	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Symbols
const (
	SymbolCursor  = "›"
	SymbolItem    = "•"
	SymbolDivider = "─"
)
