package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"spacevenue/internal/station"
)

// RunDashboard starts the live station board TUI. arabic selects the
// initial numeral script; the n key toggles it live.
func RunDashboard(manager *station.Manager, arabic bool, log *zap.Logger) error {
	model := NewDashboardModel(manager, arabic, log)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	fmt.Println("Dashboard closed.")
	return nil
}
