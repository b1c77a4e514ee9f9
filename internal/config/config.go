// Package config handles jot configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents jot configuration.
type Config struct {
	Entry EntryConfig `toml:"entry"`
	UI    UIConfig    `toml:"ui"`
	Keys  KeysConfig  `toml:"keys"`
}

// EntryConfig contains settings for the draft input.
type EntryConfig struct {
	// Placeholder text shown in the empty input
	Placeholder string `toml:"placeholder"`

	// Maximum draft length in characters (0 = unlimited)
	CharLimit int `toml:"char_limit"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Message shown instead of the list while no items exist
	EmptyMessage string `toml:"empty_message"`

	// Show 1-based position numbers next to items
	ShowIndexes bool `toml:"show_indexes"`

	// Show the item count in the header
	ShowCount bool `toml:"show_count"`
}

// KeysConfig contains keybinding settings.
// Values are comma-separated key lists, e.g. "down,j".
type KeysConfig struct {
	Up     string `toml:"up"`
	Down   string `toml:"down"`
	Home   string `toml:"home"`
	End    string `toml:"end"`
	Entry  string `toml:"entry"`
	Filter string `toml:"filter"`
	Help   string `toml:"help"`
	Quit   string `toml:"quit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Entry: EntryConfig{
			Placeholder: "Add an item...",
			CharLimit:   200,
		},
		UI: UIConfig{
			EmptyMessage: "No items yet. Type something and press enter.",
			ShowIndexes:  true,
			ShowCount:    true,
		},
		Keys: KeysConfig{
			Up:     "up,k",
			Down:   "down,j",
			Home:   "home,g",
			End:    "end,G",
			Entry:  "i,a",
			Filter: "/",
			Help:   "?",
			Quit:   "q,ctrl+c",
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/jot/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	// Respect XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "jot", "config.toml")
	}
	// Default to ~/.config on Unix (including macOS)
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "jot", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "jot", "config.toml")
	}
	return filepath.Join(configDir, "jot", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// Unmarshal directly into default config.
	// go-toml/v2 only overwrites fields present in the TOML file,
	// preserving defaults for unspecified fields (including booleans).
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to the config file.
func Save(cfg *Config) error {
	path := ConfigPath()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// CreateDefaultConfigFile creates a default config file with comments.
func CreateDefaultConfigFile() error {
	path := ConfigPath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := generateDefaultConfigContent()
	return os.WriteFile(path, []byte(content), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# jot configuration\n\n")

	b.WriteString("[entry]\n")
	b.WriteString("# Placeholder text shown in the empty input\n")
	fmt.Fprintf(&b, "placeholder = %q\n", cfg.Entry.Placeholder)
	b.WriteString("# Maximum draft length in characters (0 = unlimited)\n")
	fmt.Fprintf(&b, "char_limit = %d\n\n", cfg.Entry.CharLimit)

	b.WriteString("[ui]\n")
	b.WriteString("# Message shown instead of the list while no items exist\n")
	fmt.Fprintf(&b, "empty_message = %q\n", cfg.UI.EmptyMessage)
	b.WriteString("# Show 1-based position numbers next to items\n")
	fmt.Fprintf(&b, "show_indexes = %v\n", cfg.UI.ShowIndexes)
	b.WriteString("# Show the item count in the header\n")
	fmt.Fprintf(&b, "show_count = %v\n\n", cfg.UI.ShowCount)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# up = %q\n", cfg.Keys.Up)
	fmt.Fprintf(&b, "# down = %q\n", cfg.Keys.Down)
	fmt.Fprintf(&b, "# entry = %q\n", cfg.Keys.Entry)
	fmt.Fprintf(&b, "# filter = %q\n", cfg.Keys.Filter)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# quit = %q\n", cfg.Keys.Quit)

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Entry.CharLimit < 0 {
		warnings = append(warnings, fmt.Sprintf("entry.char_limit must be >= 0, got %d", c.Entry.CharLimit))
	}

	// enter commits the draft and esc leaves a mode; rebinding them to
	// actions would shadow those transitions.
	reserved := map[string]string{"enter": "submit", "esc": "cancel"}
	bindings := map[string]string{
		"keys.up":     c.Keys.Up,
		"keys.down":   c.Keys.Down,
		"keys.home":   c.Keys.Home,
		"keys.end":    c.Keys.End,
		"keys.entry":  c.Keys.Entry,
		"keys.filter": c.Keys.Filter,
		"keys.help":   c.Keys.Help,
		"keys.quit":   c.Keys.Quit,
	}
	for name, value := range bindings {
		for _, k := range splitKeys(value) {
			if action, taken := reserved[k]; taken {
				warnings = append(warnings, fmt.Sprintf("%s binds %q, which is reserved for %s", name, k, action))
			}
		}
	}

	return warnings
}

// splitKeys splits a comma-separated key list.
func splitKeys(s string) []string {
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
