package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/flyout/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(newModel(cfg), opts...).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
