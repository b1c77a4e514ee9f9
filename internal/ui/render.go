package ui

import (
	"fmt"
	"strings"

	"github.com/jotlist/jot/internal/config"
)

// State constants (matching app.State)
const (
	StateEntry = iota
	StateBrowse
	StateFilter
	StateHelp
)

// HelpBinding represents a keybinding for help display.
type HelpBinding struct {
	Keys string
	Desc string
}

// HelpSection represents a section of help bindings.
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	State        int
	Items        []string // items to display, already filtered if applicable
	Total        int      // committed item count, unfiltered
	Cursor       int
	ViewOffset   int
	VisibleCount int
	Width        int
	Height       int
	Config       *config.Config
	DraftInput   string // rendered draft input (entry state)
	FilterInput  string // rendered filter input (filter state)
	FilterValue  string
	HelpSections []HelpSection
}

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 8

// Render renders the full UI. It is a pure function of its params:
// rendering the same RenderParams twice produces identical output.
func Render(p RenderParams) string {
	// Graceful degradation for small terminals instead of jumping to
	// arbitrary values.
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}

	switch p.State {
	case StateBrowse:
		return renderBrowse(p)
	case StateFilter:
		return renderFilter(p)
	case StateHelp:
		return renderHelp(p)
	default:
		return renderEntry(p)
	}
}

// renderEntry renders the main view: committed items above, draft input below.
func renderEntry(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4 // Account for box borders and padding

	b.WriteString(renderHeader(p) + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")

	b.WriteString(renderItems(p, false))

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(p.DraftInput + "\n")

	helpText := compactHelp(
		"enter add • esc browse • ctrl+c quit",
		"enter•esc•ctrl+c",
		p.Width,
	)
	b.WriteString(HelpStyle.Render(helpText))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderBrowse renders the committed list with a cursor.
func renderBrowse(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(renderHeader(p) + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")

	b.WriteString(renderItems(p, true))

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	helpText := compactHelp(
		"i add • / filter • ↑/↓ move • ? help • q quit",
		"i•/•↑/↓•?•q",
		p.Width,
	)
	b.WriteString(HelpStyle.Render(helpText))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderFilter renders the filter mode.
func renderFilter(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("FILTER") + "  ")
	b.WriteString(p.FilterInput + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")

	if len(p.Items) == 0 {
		b.WriteString("\n" + MutedStyle.Render("No matches found.") + "\n")
	} else {
		b.WriteString(renderItems(p, true))
	}

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("enter done • esc clear"))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderHelp renders the help screen.
func renderHelp(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("HELP") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	for i, section := range p.HelpSections {
		b.WriteString(SelectedStyle.Render(section.Title) + "\n")
		b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, 40)) + "\n")
		for _, binding := range section.Bindings {
			// Pad keys to 10 chars for alignment
			keys := binding.Keys
			if len(keys) < 10 {
				keys = keys + strings.Repeat(" ", 10-len(keys))
			}
			b.WriteString(MutedStyle.Render("  "+keys) + " " + binding.Desc + "\n")
		}
		if i < len(p.HelpSections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("Press any key to close"))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderHeader renders the title line with an optional item count.
func renderHeader(p RenderParams) string {
	header := HeaderStyle.Render("JOT")
	showCount := true
	if p.Config != nil {
		showCount = p.Config.UI.ShowCount
	}
	if showCount {
		noun := "items"
		if p.Total == 1 {
			noun = "item"
		}
		header += "  " + CountStyle.Render(fmt.Sprintf("%d %s", p.Total, noun))
	}
	return header
}

// renderItems renders the visible slice of the list, one row per element in
// insertion order, or the configured placeholder when there is nothing to
// show. Row identity is positional; that is sound only because the list is
// append-only and never reordered or reduced.
func renderItems(p RenderParams, withCursor bool) string {
	contentWidth := p.Width - 4

	// Empty state: placeholder text, never an empty list body.
	if p.Total == 0 {
		emptyMsg := "No items yet. Type something and press enter."
		if p.Config != nil && p.Config.UI.EmptyMessage != "" {
			emptyMsg = p.Config.UI.EmptyMessage
		}
		return "\n" + MutedStyle.Render(emptyMsg) + "\n"
	}

	var b strings.Builder

	// Calculate visible range
	startIdx := p.ViewOffset
	endIdx := p.ViewOffset + p.VisibleCount
	if endIdx > len(p.Items) {
		endIdx = len(p.Items)
	}
	if startIdx >= len(p.Items) {
		startIdx = 0
	}

	// Show scroll indicator if items above
	if startIdx > 0 {
		b.WriteString(MutedStyle.Render(fmt.Sprintf("  ↑ %d more above", startIdx)) + "\n")
	}

	for i := startIdx; i < endIdx; i++ {
		selected := withCursor && i == p.Cursor
		b.WriteString(renderItem(p.Items[i], i, selected, contentWidth, p.Config))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	// Show scroll indicator if items below
	if endIdx < len(p.Items) {
		b.WriteString("\n" + MutedStyle.Render(fmt.Sprintf("  ↓ %d more below", len(p.Items)-endIdx)))
	}

	return b.String()
}

// renderItem renders a single item as one display row. Stateless: the same
// inputs always produce the same row.
func renderItem(item string, index int, selected bool, width int, cfg *config.Config) string {
	cursor := "  "
	if selected {
		cursor = SelectedStyle.Render(SymbolCursor + " ")
	}

	prefix := SymbolItem + " "
	showIndexes := true
	if cfg != nil {
		showIndexes = cfg.UI.ShowIndexes
	}
	if showIndexes {
		prefix = IndexStyle.Render(fmt.Sprintf("%2d. ", index+1))
	}

	text := item
	maxText := width - len(cursor) - 4
	if maxText > 0 && len(text) > maxText {
		text = text[:maxText-3] + "..."
	}
	if selected {
		text = SelectedStyle.Render(text)
	} else {
		text = NormalStyle.Render(text)
	}

	return cursor + prefix + text
}

// wrapInBox wraps content in a box.
func wrapInBox(content string, width, height int) string {
	boxWidth := width - 2
	// Graceful degradation: use actual width, just ensure minimum for box borders
	if boxWidth < MinWidth-2 {
		boxWidth = MinWidth - 2
	}

	// Don't force height - let content determine size
	style := BoxStyle.Width(boxWidth)

	return style.Render(content)
}

// compactHelp returns a shortened help string for small terminals.
func compactHelp(full, compact string, width int) string {
	// If terminal is wide enough, use full help text
	if width >= 80 {
		return full
	}
	return compact
}
