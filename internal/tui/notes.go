package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"devdash/internal/collection"
	"devdash/internal/debounce"
	"devdash/internal/model"
	"devdash/internal/store"
)

// draftAutosaveQuiet is how long the draft must sit unchanged before it is
// written through to the store.
const draftAutosaveQuiet = 500 * time.Millisecond

type draftSavedMsg struct{}

type notesPanel struct {
	store store.Store
	pad   model.NotesPad
	area  textarea.Model
	saver *debounce.Debouncer[string]

	editingDraft bool
	saved        bool
	preview      bool // render the draft as markdown instead of the editor
	cursor       int  // recent-notes cursor
}

func newNotesPanel(s store.Store, events chan<- tea.Msg) notesPanel {
	area := textarea.New()
	area.Placeholder = "Jot something down..."
	area.SetHeight(4)
	area.CharLimit = 0

	pad := s.NotesPad()
	area.SetValue(pad.CurrentNote)

	p := notesPanel{store: s, pad: pad, area: area}
	p.saver = debounce.New(draftAutosaveQuiet, func(draft string) {
		cur := s.NotesPad()
		cur.CurrentNote = draft
		_ = s.SaveNotesPad(cur)
		events <- draftSavedMsg{}
	})
	return p
}

func (p *notesPanel) refresh() {
	p.pad = p.store.NotesPad()
	if !p.editingDraft {
		p.area.SetValue(p.pad.CurrentNote)
	}
	if p.cursor >= len(p.pad.RecentNotes) {
		p.cursor = len(p.pad.RecentNotes) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *notesPanel) editing() bool { return p.editingDraft }

func (p *notesPanel) stop() {
	p.saver.Flush()
	p.saver.Stop()
}

func (p *notesPanel) update(msg tea.KeyMsg, app *appModel) tea.Cmd {
	if p.editingDraft {
		if msg.String() == "esc" {
			p.editingDraft = false
			p.area.Blur()
			p.saver.Flush()
			return nil
		}
		var cmd tea.Cmd
		p.area, cmd = p.area.Update(msg)
		p.pad.CurrentNote = p.area.Value()
		p.saved = false
		p.saver.Set(p.area.Value())
		return cmd
	}

	switch msg.String() {
	case "i", "e":
		p.editingDraft = true
		p.preview = false
		return p.area.Focus()
	case "v":
		p.preview = !p.preview
	case "s":
		if strings.TrimSpace(p.pad.CurrentNote) != "" {
			p.saver.Flush()
			pad := store.SnapshotDraft(p.store.NotesPad())
			_ = p.store.SaveNotesPad(pad)
			p.refresh()
		}
	case "enter":
		if p.cursor < len(p.pad.RecentNotes) {
			p.saver.Flush()
			pad := p.store.NotesPad()
			pad.CurrentNote = p.pad.RecentNotes[p.cursor].Content
			_ = p.store.SaveNotesPad(pad)
			p.refresh()
			p.editingDraft = true
			p.preview = false
			return p.area.Focus()
		}
	case "j", "down":
		if p.cursor < len(p.pad.RecentNotes)-1 {
			p.cursor++
		}
	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "d":
		if p.cursor < len(p.pad.RecentNotes) {
			n := p.pad.RecentNotes[p.cursor]
			app.confirm = &confirmState{
				prompt: fmt.Sprintf("Delete note %q?", truncateText(n.Content, 40)),
				apply: func(m *appModel) {
					pad := m.notes.store.NotesPad()
					pad.RecentNotes = collection.Delete(pad.RecentNotes, n.ID)
					_ = m.notes.store.SaveNotesPad(pad)
					m.notes.refresh()
				},
			}
		}
	}
	return nil
}

func (p *notesPanel) view(width int, focused bool, now time.Time) string {
	var b strings.Builder

	if p.preview && !p.editingDraft && strings.TrimSpace(p.pad.CurrentNote) != "" {
		b.WriteString(renderMarkdown(p.pad.CurrentNote, width-2))
	} else {
		b.WriteString(p.area.View())
	}
	b.WriteString("\n")
	if p.saved && !p.editingDraft {
		b.WriteString(styleMuted().Render("Saved"))
	}
	b.WriteString("\n")

	if len(p.pad.RecentNotes) > 0 {
		b.WriteString(styleAccent().Render("Recent"))
		b.WriteString("\n")
	}
	for i, n := range p.pad.RecentNotes {
		row := truncateText(strings.ReplaceAll(n.Content, "\n", " "), 50) +
			" " + styleMuted().Render(formatRelativeTime(n.CreatedAt, now))
		b.WriteString(cursorLine(row, focused && i == p.cursor && !p.editingDraft))
		b.WriteString("\n")
	}

	if focused && !p.editingDraft {
		b.WriteString(styleMuted().Render("i: edit   v: preview   s: save to recent   enter: load note   d: delete"))
	}
	return b.String()
}
