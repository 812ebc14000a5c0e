package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// runTUI starts the full-screen interactive planner.
func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
