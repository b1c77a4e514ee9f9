package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jotlist/jot/internal/app"
	"github.com/jotlist/jot/internal/config"
	"github.com/jotlist/jot/internal/debug"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: XDG config dir)")
	debugLog := flag.String("debug", "", "write a debug log to this file")
	flag.Parse()

	if *debugLog != "" {
		if err := debug.Enable(*debugLog); err != nil {
			fmt.Fprintf(os.Stderr, "Error enabling debug log: %v\n", err)
			os.Exit(1)
		}
		defer debug.Close()
	}

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	for _, warning := range cfg.Validate() {
		fmt.Fprintf(os.Stderr, "Config warning: %s\n", warning)
	}

	debug.Log("starting %s", filepath.Base(os.Args[0]))

	// Create and run the application
	model := app.New(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if m, ok := finalModel.(app.Model); ok {
		debug.Log("exiting with %d items", len(m.Items()))
	}
}
