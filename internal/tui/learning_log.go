package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"devdash/internal/collection"
	"devdash/internal/model"
	"devdash/internal/pipeline"
	"devdash/internal/store"
)

var logSortKeys = []string{"newest", "oldest", "week"}

type logPanel struct {
	store   store.Store
	entries []model.LogEntry

	sortIdx  int
	pager    pipeline.Pager
	cursor   int
	expanded bool
}

func newLogPanel(s store.Store, pageSize int) logPanel {
	return logPanel{
		store:   s,
		entries: s.LearningLogs(),
		pager:   pipeline.NewPager(pageSize),
	}
}

func (p *logPanel) refresh() { p.entries = p.store.LearningLogs() }

func (p *logPanel) less() func(a, b model.LogEntry) bool {
	switch logSortKeys[p.sortIdx] {
	case "oldest":
		return func(a, b model.LogEntry) bool { return a.CreatedAt < b.CreatedAt }
	case "week":
		return func(a, b model.LogEntry) bool { return pipeline.WeekNumber(a.Week) > pipeline.WeekNumber(b.Week) }
	default:
		return func(a, b model.LogEntry) bool { return a.CreatedAt > b.CreatedAt }
	}
}

func (p *logPanel) visible() ([]model.LogEntry, int) {
	out := pipeline.SortBy(p.entries, p.less())
	p.pager.Sync(logSortKeys[p.sortIdx])
	total := len(out)
	return pipeline.Slice(out, &p.pager), total
}

func (p *logPanel) update(msg tea.KeyMsg, app *appModel) tea.Cmd {
	page, total := p.visible()
	switch msg.String() {
	case "j", "down":
		if p.cursor < len(page)-1 {
			p.cursor++
		}
	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "l", "right":
		p.pager.SetPage(p.pager.Page+1, total)
		p.cursor = 0
	case "h", "left":
		p.pager.SetPage(p.pager.Page-1, total)
		p.cursor = 0
	case "s":
		p.sortIdx = (p.sortIdx + 1) % len(logSortKeys)
		p.cursor = 0
	case "enter", "v":
		p.expanded = !p.expanded
	case "d":
		if p.cursor < len(page) {
			e := page[p.cursor]
			app.confirm = &confirmState{
				prompt: fmt.Sprintf("Delete log entry %q?", e.Week),
				apply: func(m *appModel) {
					_ = m.logp.store.SaveLearningLogs(collection.Delete(m.logp.entries, e.ID))
					m.logp.refresh()
					m.logp.cursor = 0
				},
			}
		}
	}
	return nil
}

func (p *logPanel) view(width int, focused bool, now time.Time) string {
	page, total := p.visible()

	var b strings.Builder
	b.WriteString(styleMuted().Render(fmt.Sprintf("%s · %d entries", logSortKeys[p.sortIdx], total)))
	b.WriteString("\n")

	if len(page) == 0 {
		b.WriteString(styleMuted().Render("Nothing logged yet."))
		b.WriteString("\n")
	}
	for i, e := range page {
		row := e.Week
		if len(e.Topics) > 0 {
			row += styleMuted().Render("  " + strings.Join(e.Topics, ", "))
		}
		b.WriteString(cursorLine(row, focused && i == p.cursor))
		b.WriteString("\n")
		if p.expanded && focused && i == p.cursor {
			if e.Notes != "" {
				b.WriteString(renderMarkdown(e.Notes, width-4))
				b.WriteString("\n")
			}
			if e.KeyTakeaway != "" {
				b.WriteString(styleAccent().Render("Takeaway: ") + e.KeyTakeaway)
				b.WriteString("\n")
			}
			if len(e.Tags) > 0 {
				b.WriteString(styleMuted().Render("#" + strings.Join(e.Tags, " #")))
				b.WriteString("\n")
			}
		}
	}

	if pages := renderPageControls(p.pager.Page, p.pager.TotalPages(total)); pages != "" {
		b.WriteString(pages)
		b.WriteString("\n")
	}
	if focused {
		b.WriteString(styleMuted().Render("enter: detail   s: sort   h/l: pages   d: delete"))
	}
	return b.String()
}
