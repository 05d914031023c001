package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"devdash/internal/collection"
	"devdash/internal/model"
	"devdash/internal/store"
)

type tasksPanel struct {
	store  store.Store
	tasks  []model.Task
	cursor int
	input  textinput.Model
	adding bool
}

func newTasksPanel(s store.Store) tasksPanel {
	in := textinput.New()
	in.Placeholder = "New task..."
	in.CharLimit = 200
	return tasksPanel{store: s, tasks: s.Tasks(), input: in}
}

func (p *tasksPanel) refresh() {
	p.tasks = p.store.Tasks()
	if p.cursor >= len(p.tasks) {
		p.cursor = len(p.tasks) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *tasksPanel) editing() bool { return p.adding }

func (p *tasksPanel) update(msg tea.KeyMsg, app *appModel) tea.Cmd {
	if p.adding {
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(p.input.Value())
			if text != "" {
				task := model.Task{ID: collection.NewID(), Text: text, CreatedAt: collection.Now()}
				// New tasks go to the bottom of the list.
				_ = p.store.SaveTasks(collection.Append(p.tasks, task))
				p.refresh()
				p.cursor = len(p.tasks) - 1
			}
			p.adding = false
			p.input.Blur()
			p.input.SetValue("")
			return nil
		case "esc":
			p.adding = false
			p.input.Blur()
			p.input.SetValue("")
			return nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "j", "down":
		if p.cursor < len(p.tasks)-1 {
			p.cursor++
		}
	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "a":
		p.adding = true
		return p.input.Focus()
	case " ", "x":
		if p.cursor < len(p.tasks) {
			id := p.tasks[p.cursor].ID
			if tasks, ok := collection.Patch(p.tasks, id, func(t model.Task) model.Task {
				t.Completed = !t.Completed
				return t
			}); ok {
				_ = p.store.SaveTasks(tasks)
				p.refresh()
			}
		}
	case "d":
		if p.cursor < len(p.tasks) {
			t := p.tasks[p.cursor]
			app.confirm = &confirmState{
				prompt: fmt.Sprintf("Delete task %q?", truncateText(t.Text, 40)),
				apply: func(m *appModel) {
					_ = m.tasks.store.SaveTasks(collection.Delete(m.tasks.tasks, t.ID))
					m.tasks.refresh()
				},
			}
		}
	}
	return nil
}

func (p *tasksPanel) view(width int, focused bool, now time.Time) string {
	var b strings.Builder

	done := 0
	for _, t := range p.tasks {
		if t.Completed {
			done++
		}
	}
	b.WriteString(styleMuted().Render(fmt.Sprintf("%d/%d done", done, len(p.tasks))))
	b.WriteString("\n")

	if len(p.tasks) == 0 {
		b.WriteString(styleMuted().Render("No tasks yet. Press a to add one."))
	}
	for i, t := range p.tasks {
		box := "[ ]"
		text := t.Text
		if t.Completed {
			box = "[x]"
			text = styleMuted().Strikethrough(true).Render(text)
		}
		row := box + " " + text + " " + styleMuted().Render(formatRelativeTime(t.CreatedAt, now))
		b.WriteString(cursorLine(row, focused && i == p.cursor && !p.adding))
		b.WriteString("\n")
	}

	if p.adding {
		b.WriteString(p.input.View())
		b.WriteString("\n")
	}
	if focused && !p.adding {
		b.WriteString(styleMuted().Render("a: add   space: toggle   d: delete"))
	}
	return b.String()
}
