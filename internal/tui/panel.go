package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderPanel frames one dashboard widget. The body is clipped to the panel's
// persisted height so a long list can never push the widgets below it off
// screen; lists paginate instead of growing.
func renderPanel(title, body string, width, height int, focused, lifted bool) string {
	if width < 20 {
		width = 20
	}
	innerW := width - 2

	borderColor := colorPanelBorder
	if focused {
		borderColor = colorPanelBorderFocused
	}

	titleSt := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
	if lifted {
		title = "≡ " + title
		titleSt = titleSt.Foreground(colorAccent)
	}

	lines := strings.Split(body, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, ln := range lines {
		lines[i] = ansi.Truncate(ln, innerW, "…")
	}

	content := titleSt.Render(ansi.Truncate(title, innerW, "…")) + "\n" + strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(innerW).
		Render(content)
}

// cursorLine renders one list row, highlighting the cursor row of the focused
// panel.
func cursorLine(text string, selected bool) string {
	if selected {
		return styleSelected().Render("> " + text)
	}
	return "  " + text
}
