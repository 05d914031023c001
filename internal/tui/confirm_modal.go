package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// confirmState is a pending destructive action. apply runs on confirm; esc
// or "n" discards it.
type confirmState struct {
	prompt string
	apply  func(m *appModel)
}

func renderConfirmBar(width int, prompt string) string {
	// A one-line bar instead of a boxed modal: destructive confirms here are
	// all single-record, so a full overlay would be heavier than the action.
	st := lipgloss.NewStyle().
		Foreground(colorDanger).
		Background(colorSelectedBg).
		Padding(0, 1).
		Width(max(0, width))
	hint := styleMuted().Render("  y: confirm   n/esc: cancel")
	return st.Render(strings.TrimSpace(prompt)) + "\n" + hint
}
