package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"trendhub/internal/tui"
	"trendhub/internal/tui/config"
	"trendhub/pkg/logger"
)

func main() {
	logger.Init(logger.Config{
		Level:  "info",
		Output: "stderr",
	})

	// Configuration errors are fatal: a production deploy pointing at
	// nothing (or at loopback) must not start and silently degrade.
	cfg, err := config.Load("")
	if err != nil {
		logger.Fatalf("configuration error: %v", err)
	}

	app := tui.New(cfg)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running TUI: %v\n", err)
		os.Exit(1)
	}
}
