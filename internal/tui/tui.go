package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RunDayTUI starts the interactive day editor. targetText seeds the target
// field (normally "08:30:00").
func RunDayTUI(targetText string) error {
	p := tea.NewProgram(NewDayModel(targetText), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
