package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"devdash/internal/assistant"
	"devdash/internal/collection"
	"devdash/internal/model"
	"devdash/internal/store"
)

type linksPanel struct {
	store  store.Store
	links  []model.Link
	cursor int
}

func newLinksPanel(s store.Store) linksPanel {
	return linksPanel{store: s, links: s.Links()}
}

func (p *linksPanel) refresh() {
	p.links = p.store.Links()
	if p.cursor >= len(p.links) {
		p.cursor = len(p.links) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *linksPanel) update(msg tea.KeyMsg, app *appModel) tea.Cmd {
	switch msg.String() {
	case "j", "down":
		if p.cursor < len(p.links)-1 {
			p.cursor++
		}
	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "enter", "o":
		if p.cursor < len(p.links) {
			l := p.links[p.cursor]
			if links, ok := collection.Patch(p.links, l.ID, func(x model.Link) model.Link {
				x.Clicks++
				return x
			}); ok {
				_ = p.store.SaveLinks(links)
				p.refresh()
			}
			if err := assistant.OpenExternal(l.URL); err != nil {
				app.status = "Could not open browser"
			}
		}
	case "y":
		if p.cursor < len(p.links) {
			app.status = copyText(p.links[p.cursor].URL, "URL copied to clipboard")
		}
	case "d":
		if p.cursor < len(p.links) {
			l := p.links[p.cursor]
			app.confirm = &confirmState{
				prompt: fmt.Sprintf("Delete link %q?", l.Title),
				apply: func(m *appModel) {
					_ = m.links.store.SaveLinks(collection.Delete(m.links.links, l.ID))
					m.links.refresh()
				},
			}
		}
	}
	return nil
}

func (p *linksPanel) view(width int, focused bool) string {
	var b strings.Builder
	if len(p.links) == 0 {
		b.WriteString(styleMuted().Render("No links saved."))
		b.WriteString("\n")
	}
	for i, l := range p.links {
		row := l.Title
		if l.Category != "" {
			row += styleMuted().Render("  " + l.Category)
		}
		if l.Clicks > 0 {
			row += styleMuted().Render(fmt.Sprintf("  %d visits", l.Clicks))
		}
		b.WriteString(cursorLine(row, focused && i == p.cursor))
		b.WriteString("\n")
	}
	if focused {
		b.WriteString(styleMuted().Render("enter: open   y: copy URL   d: delete"))
	}
	return b.String()
}
