package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bossin/grundsteuercheck/internal/config"
	"github.com/bossin/grundsteuercheck/internal/tui"
)

func main() {
	// Optional: path to a defaults file as the only argument.
	defaultsPath := ""
	if len(os.Args) > 1 {
		defaultsPath = os.Args[1]
	}

	defaults, err := config.LoadDefaults(defaultsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fehler beim Laden der Defaults: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewModel(defaults), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fehler beim Start der TUI: %v\n", err)
		os.Exit(1)
	}
}
