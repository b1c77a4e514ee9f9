package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/jotlist/jot/internal/config"
	"github.com/jotlist/jot/internal/debug"
	"github.com/jotlist/jot/internal/list"
	"github.com/jotlist/jot/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateEntry State = iota
	StateBrowse
	StateFilter
	StateHelp
)

// Model is the main application model.
type Model struct {
	// Configuration
	config *config.Config

	// Data
	items         list.List
	filteredItems []string
	cursor        int
	viewOffset    int

	// State
	state State

	// Draft entry
	draftInput textinput.Model

	// Filter
	filterInput textinput.Model

	// UI
	width  int
	height int
	keys   KeyMap

	// Exit behavior
	shouldQuit bool
}

// New creates a new Model.
func New(cfg *config.Config) Model {
	draftInput := textinput.New()
	draftInput.Prompt = "> "
	draftInput.Placeholder = cfg.Entry.Placeholder
	draftInput.CharLimit = cfg.Entry.CharLimit
	draftInput.Focus()

	filterInput := textinput.New()
	filterInput.Prompt = "> "
	filterInput.Placeholder = "filter..."
	filterInput.CharLimit = 50

	m := Model{
		config:      cfg,
		keys:        KeyMapFromConfig(&cfg.Keys),
		draftInput:  draftInput,
		filterInput: filterInput,
		items:       list.New(),
		state:       StateEntry,
	}
	m.applyFilter()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		// Handle quit globally; ctrl+c works even while an input is focused
		if msg.Type == tea.KeyCtrlC {
			m.shouldQuit = true
			return m, tea.Quit
		}

		// Delegate to state-specific handler
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateEntry:
		return m.handleEntryKeys(msg)
	case StateBrowse:
		return m.handleBrowseKeys(msg)
	case StateFilter:
		return m.handleFilterKeys(msg)
	case StateHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

// handleEntryKeys handles key presses while the draft input is focused.
func (m Model) handleEntryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateBrowse
		m.draftInput.Blur()
		return m, nil
	case tea.KeyEnter:
		// Submit: consume the key here so it never reaches the input.
		// A draft that is blank after trimming is silently ignored and
		// stays in the input; a valid draft is stored verbatim
		// (whitespace intact) and the input is cleared.
		items, ok := m.items.Commit(m.draftInput.Value())
		if !ok {
			debug.Log("submit: blank draft rejected")
			return m, nil
		}
		m.items = items
		m.draftInput.Reset()
		m.applyFilter()
		m.cursor = len(m.filteredItems) - 1
		m.ensureCursorVisible()
		debug.Log("submit: item %d committed", m.items.Len())
		return m, nil
	}

	var cmd tea.Cmd
	m.draftInput, cmd = m.draftInput.Update(msg)
	return m, cmd
}

// handleBrowseKeys handles key presses in the browse view.
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shouldQuit = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.filteredItems)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.filteredItems) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.Entry):
		m.state = StateEntry
		// Adding while a filter is active would make the new item
		// vanish from view when it doesn't match, so clear it.
		m.filterInput.Reset()
		m.applyFilter()
		m.draftInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Filter):
		m.state = StateFilter
		m.filterInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
		return m, nil
	}
	return m, nil
}

// handleFilterKeys handles key presses in filter mode.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateBrowse
		m.filterInput.Reset()
		m.applyFilter()
		return m, nil
	case tea.KeyEnter:
		m.state = StateBrowse
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// handleHelpKeys handles key presses in the help view.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	m.state = StateBrowse
	return m, nil
}

// applyFilter projects the committed items through the current filter using
// fuzzy matching. The stored list is never touched; this is a view only.
func (m *Model) applyFilter() {
	filter := m.filterInput.Value()
	if filter == "" {
		m.filteredItems = m.items.Items()
	} else {
		items := m.items.Items()
		matches := fuzzy.Find(filter, items)

		m.filteredItems = nil
		for _, match := range matches {
			m.filteredItems = append(m.filteredItems, items[match.Index])
		}
	}

	// Keep cursor in range
	if m.cursor >= len(m.filteredItems) {
		m.cursor = len(m.filteredItems) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// visibleRows returns how many item rows fit in the current terminal.
func (m Model) visibleRows() int {
	height := m.height
	if height < ui.MinHeight {
		height = ui.MinHeight
	}
	// Header, dividers, input/help lines, and box chrome
	rows := height - 9
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ensureCursorVisible scrolls the viewport so the cursor stays on screen.
func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	if m.cursor < m.viewOffset {
		m.viewOffset = m.cursor
	}
	if m.cursor >= m.viewOffset+visible {
		m.viewOffset = m.cursor - visible + 1
	}
	if m.viewOffset < 0 {
		m.viewOffset = 0
	}
}

// View renders the UI.
func (m Model) View() string {
	return ui.Render(ui.RenderParams{
		State:        int(m.state),
		Items:        m.filteredItems,
		Total:        m.items.Len(),
		Cursor:       m.cursor,
		ViewOffset:   m.viewOffset,
		VisibleCount: m.visibleRows(),
		Width:        m.width,
		Height:       m.height,
		Config:       m.config,
		DraftInput:   m.draftInput.View(),
		FilterInput:  m.filterInput.View(),
		FilterValue:  m.filterInput.Value(),
		HelpSections: m.helpSections(),
	})
}

// helpSections builds the help screen content from the active keymap.
func (m Model) helpSections() []ui.HelpSection {
	return []ui.HelpSection{
		{
			Title: "Adding items",
			Bindings: []ui.HelpBinding{
				{Keys: m.keys.Entry.Help().Key, Desc: "focus the input"},
				{Keys: "enter", Desc: "add the typed item"},
				{Keys: "esc", Desc: "back to browsing"},
			},
		},
		{
			Title: "Browsing",
			Bindings: []ui.HelpBinding{
				{Keys: m.keys.Up.Help().Key, Desc: "move up"},
				{Keys: m.keys.Down.Help().Key, Desc: "move down"},
				{Keys: m.keys.Home.Help().Key, Desc: "first item"},
				{Keys: m.keys.End.Help().Key, Desc: "last item"},
				{Keys: m.keys.Filter.Help().Key, Desc: "filter items"},
			},
		},
		{
			Title: "General",
			Bindings: []ui.HelpBinding{
				{Keys: m.keys.Help.Help().Key, Desc: "this help"},
				{Keys: m.keys.Quit.Help().Key, Desc: "quit"},
			},
		},
	}
}

// Draft returns the current unsubmitted draft text.
func (m Model) Draft() string {
	return m.draftInput.Value()
}

// Items returns the committed items in insertion order.
func (m Model) Items() []string {
	return m.items.Items()
}

// ShouldQuit returns whether the app should exit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}
