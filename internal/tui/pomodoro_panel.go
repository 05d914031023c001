package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devdash/internal/model"
	"devdash/internal/pomodoro"
	"devdash/internal/store"
)

type pomodoroPanel struct {
	store  store.Store
	engine *pomodoro.Engine
}

func (p *pomodoroPanel) update(msg tea.KeyMsg, app *appModel) tea.Cmd {
	switch msg.String() {
	case " ", "enter":
		p.engine.Toggle()
	case "r":
		p.engine.Reset()
	}
	return nil
}

func (p *pomodoroPanel) view(width int, focused bool) string {
	st := p.engine.State()

	clockSt := lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	if st.Mode != model.PhaseWork {
		clockSt = clockSt.Foreground(colorDone)
	}

	var b strings.Builder
	b.WriteString(pomodoro.ModeLabel(st.Mode))
	b.WriteString("\n")
	b.WriteString(clockSt.Render(pomodoro.FormatClock(st.TimeLeft)))
	if st.IsActive {
		b.WriteString("  " + styleAccent().Render("● running"))
	} else {
		b.WriteString("  " + styleMuted().Render("paused"))
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Render(fmt.Sprintf("Sessions today: %d", st.SessionsCompleted)))
	b.WriteString("\n")
	b.WriteString("Focus: " + truncateText(p.store.ActiveTaskSummary(), 50))
	b.WriteString("\n")
	if focused {
		b.WriteString(styleMuted().Render("space: start/pause   r: reset"))
	}
	return b.String()
}
