package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"devdash/internal/store"
)

func Run(s store.Store) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(s)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
