package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jotlist/jot/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Actions
	Entry  key.Binding
	Filter key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "last"),
		),
		Entry: key.NewBinding(
			key.WithKeys("i", "a"),
			key.WithHelp("i/a", "add"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if cfg.Up != "" {
		km.Up = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		)
	}
	if cfg.Down != "" {
		km.Down = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		)
	}
	if cfg.Home != "" {
		km.Home = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Home)...),
			key.WithHelp(cfg.Home, "first"),
		)
	}
	if cfg.End != "" {
		km.End = key.NewBinding(
			key.WithKeys(parseKeys(cfg.End)...),
			key.WithHelp(cfg.End, "last"),
		)
	}
	if cfg.Entry != "" {
		km.Entry = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Entry)...),
			key.WithHelp(cfg.Entry, "add"),
		)
	}
	if cfg.Filter != "" {
		km.Filter = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Filter)...),
			key.WithHelp(cfg.Filter, "filter"),
		)
	}
	if cfg.Help != "" {
		km.Help = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Help)...),
			key.WithHelp(cfg.Help, "help"),
		)
	}
	if cfg.Quit != "" {
		km.Quit = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		)
	}

	return km
}

// parseKeys parses a comma-separated list of keys.
func parseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
