package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Entry.Placeholder != "Add an item..." {
		t.Errorf("Expected default placeholder, got %q", cfg.Entry.Placeholder)
	}

	if cfg.Entry.CharLimit != 200 {
		t.Errorf("Expected char limit 200, got %d", cfg.Entry.CharLimit)
	}

	if cfg.UI.EmptyMessage == "" {
		t.Error("Expected a non-empty default empty_message")
	}

	if !cfg.UI.ShowIndexes {
		t.Error("Expected ShowIndexes to be true")
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}

	// Missing file falls back to defaults
	if cfg.Entry.Placeholder != DefaultConfig().Entry.Placeholder {
		t.Errorf("Expected default placeholder, got %q", cfg.Entry.Placeholder)
	}
}

func TestLoadFromPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[entry]
placeholder = "What next?"

[ui]
show_indexes = false

[keys]
quit = "Q"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}

	if cfg.Entry.Placeholder != "What next?" {
		t.Errorf("Expected overridden placeholder, got %q", cfg.Entry.Placeholder)
	}
	if cfg.UI.ShowIndexes {
		t.Error("Expected ShowIndexes override to false")
	}
	if cfg.Keys.Quit != "Q" {
		t.Errorf("Expected quit key override, got %q", cfg.Keys.Quit)
	}

	// Fields absent from the file keep their defaults
	if cfg.Entry.CharLimit != 200 {
		t.Errorf("Expected default char limit to survive, got %d", cfg.Entry.CharLimit)
	}
	if !cfg.UI.ShowCount {
		t.Error("Expected default ShowCount to survive")
	}
}

func TestLoadFromPathInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[entry\nbroken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			config:      DefaultConfig(),
			wantWarning: false,
		},
		{
			name: "negative char limit",
			config: &Config{
				Entry: EntryConfig{CharLimit: -1},
			},
			wantWarning: true,
		},
		{
			name: "reserved key enter",
			config: &Config{
				Keys: KeysConfig{Quit: "q,enter"},
			},
			wantWarning: true,
		},
		{
			name: "reserved key esc",
			config: &Config{
				Keys: KeysConfig{Help: "esc"},
			},
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.Validate()
			hasWarnings := len(warnings) > 0
			if hasWarnings != tt.wantWarning {
				t.Errorf("Validate() hasWarnings = %v, want %v. Warnings: %v", hasWarnings, tt.wantWarning, warnings)
			}
		})
	}
}

func TestConfigPathRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	got := ConfigPath()
	want := filepath.Join("/tmp/xdg-test", "jot", "config.toml")
	if got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}
