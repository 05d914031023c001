package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"devdash/internal/model"
	"devdash/internal/store"
)

func newTestApp(t *testing.T) (appModel, store.Store) {
	t.Helper()
	s := store.New(t.TempDir(), zap.NewNop())
	if err := s.Ensure(); err != nil {
		t.Fatalf("ensure store: %v", err)
	}
	m := newAppModel(s)
	t.Cleanup(m.shutdown)
	return m, s
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(appModel)
	}
	return m
}

func typeText(t *testing.T, m appModel, text string) appModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(appModel)
}

func TestViewShowsAllModules(t *testing.T) {
	m, _ := newTestApp(t)
	view := m.View()
	for _, title := range []string{
		"Today's Focus", "Quick Notes", "Pomodoro", "Prompt Library",
		"Code Snippets", "AI Assistant", "Learning Log", "Quick Links",
	} {
		if !strings.Contains(view, title) {
			t.Errorf("view missing %q", title)
		}
	}
}

func TestTabCyclesFocusThroughAllPanels(t *testing.T) {
	m, _ := newTestApp(t)
	if m.focused() != model.ModuleTasks {
		t.Fatalf("initial focus should be the first module, got %s", m.focused())
	}

	n := len(m.focusables())
	for i := 0; i < n; i++ {
		m = press(t, m, "tab")
	}
	if m.focused() != model.ModuleTasks {
		t.Errorf("focus should wrap around after %d tabs, got %s", n, m.focused())
	}

	m = press(t, m, "shift+tab")
	if m.focused() != railLinks {
		t.Errorf("shift+tab from the first module should land on the links rail, got %s", m.focused())
	}
}

func TestTaskAddToggleDelete(t *testing.T) {
	m, s := newTestApp(t)

	m = press(t, m, "a")
	m = typeText(t, m, "write the changelog")
	m = press(t, m, "enter")

	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "write the changelog" {
		t.Fatalf("task not persisted: %v", tasks)
	}

	m = press(t, m, "space")
	if !s.Tasks()[0].Completed {
		t.Fatal("space should toggle completion")
	}

	m = press(t, m, "d")
	if m.confirm == nil {
		t.Fatal("delete should ask for confirmation")
	}
	if !strings.Contains(m.View(), "Delete task") {
		t.Error("confirm prompt should be visible")
	}
	m = press(t, m, "y")
	if len(s.Tasks()) != 0 {
		t.Fatal("confirmed delete should remove the task")
	}
}

func TestDeleteConfirmCanBeCancelled(t *testing.T) {
	m, s := newTestApp(t)

	m = press(t, m, "a")
	m = typeText(t, m, "keep me")
	m = press(t, m, "enter", "d", "n")

	if m.confirm != nil {
		t.Fatal("n should dismiss the confirm")
	}
	if len(s.Tasks()) != 1 {
		t.Fatal("cancelled delete must not remove the task")
	}
}

func TestGrabReorderPersists(t *testing.T) {
	m, s := newTestApp(t)

	// Lift the first module and slide it down two positions.
	m = press(t, m, "g", "j", "j", "enter")

	got := m.order.Modules()
	if got[2] != model.ModuleTasks {
		t.Fatalf("tasks should sit at index 2 after two slides, got %v", got)
	}
	if m.focused() != model.ModuleTasks {
		t.Error("focus should follow the lifted module")
	}

	saved := s.ModuleOrder()
	if saved[2] != model.ModuleTasks {
		t.Fatalf("reorder should persist immediately, got %v", saved)
	}
}

func TestLayoutResetRestoresDefaults(t *testing.T) {
	m, s := newTestApp(t)

	m = press(t, m, "g", "j", "enter")
	if s.ModuleOrder()[0] == model.ModuleTasks {
		t.Fatal("precondition: order should have changed")
	}

	m = press(t, m, "R", "y")
	got := m.order.Modules()
	for i, id := range model.DefaultModuleOrder() {
		if got[i] != id {
			t.Fatalf("reset should restore the default order, got %v", got)
		}
	}
}

func TestPanelResizeClampsAndPersists(t *testing.T) {
	m, s := newTestApp(t)

	start := m.heights[model.ModuleTasks].Height()
	m = press(t, m, "+", "+")
	if got := m.heights[model.ModuleTasks].Height(); got != start+2 {
		t.Fatalf("expected height %d, got %d", start+2, got)
	}
	if got := s.PanelHeight(model.ModuleTasks, 0); got != start+2 {
		t.Fatalf("height should persist, got %d", got)
	}

	for i := 0; i < 100; i++ {
		m = press(t, m, "-")
	}
	if got := m.heights[model.ModuleTasks].Height(); got != panelMinHeight {
		t.Fatalf("height should clamp at %d, got %d", panelMinHeight, got)
	}
}

func TestPomodoroSpaceStartsCountdown(t *testing.T) {
	m, _ := newTestApp(t)

	// Pomodoro sits third in the default order.
	m = press(t, m, "tab", "tab")
	if m.focused() != model.ModulePomodoro {
		t.Fatalf("expected pomodoro focus, got %s", m.focused())
	}

	m = press(t, m, "space")
	if !m.engine.State().IsActive {
		t.Fatal("space should start the countdown")
	}

	before := m.engine.State().TimeLeft
	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(appModel)
	if got := m.engine.State().TimeLeft; got != before-1 {
		t.Fatalf("tick should decrement the clock: %d -> %d", before, got)
	}

	m = press(t, m, "space")
	if m.engine.State().IsActive {
		t.Fatal("space should pause the countdown")
	}
}

func TestSettledSearchFiltersPrompts(t *testing.T) {
	m, _ := newTestApp(t)

	next, _ := m.Update(searchSettledMsg{module: model.ModulePrompts, query: "no-prompt-matches-this"})
	m = next.(appModel)

	page, total := m.prompts.visible()
	if total != 0 || len(page) != 0 {
		t.Fatalf("expected empty result set, got %d", total)
	}
	if !strings.Contains(m.View(), "No prompts match.") {
		t.Error("empty state should be rendered")
	}
}

func TestPromptsRecentSortUsesLastActivity(t *testing.T) {
	m, _ := newTestApp(t)

	used := model.Prompt{ID: "a", Title: "old but copied", CreatedAt: 100, LastUsed: 1000}
	fresh := model.Prompt{ID: "b", Title: "newer, never copied", CreatedAt: 500}

	less := m.prompts.less() // default sort is "recent"
	if !less(used, fresh) || less(fresh, used) {
		t.Fatal("a recently copied prompt should outrank a merely newer one")
	}
}

func TestDraftAutosaveWritesThroughDebounce(t *testing.T) {
	m, s := newTestApp(t)

	m = press(t, m, "tab") // notes is second in the default order
	if m.focused() != model.ModuleNotes {
		t.Fatalf("expected notes focus, got %s", m.focused())
	}

	m = press(t, m, "i")
	m = typeText(t, m, "half-formed thought")

	// Not yet: the quiet period has not elapsed.
	if got := s.NotesPad().CurrentNote; got != "" {
		t.Fatalf("draft should not persist before the quiet period, got %q", got)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case msg := <-m.events:
			if _, ok := msg.(draftSavedMsg); ok {
				if got := s.NotesPad().CurrentNote; got != "half-formed thought" {
					t.Fatalf("autosaved draft mismatch: %q", got)
				}
				return
			}
		case <-deadline:
			t.Fatal("autosave never fired")
		}
	}
}

func TestRecentNoteLoadsBackIntoDraft(t *testing.T) {
	m, s := newTestApp(t)

	pad := s.NotesPad()
	pad.RecentNotes = []model.Note{{ID: "n1", Content: "standup summary", CreatedAt: 1}}
	if err := s.SaveNotesPad(pad); err != nil {
		t.Fatalf("save: %v", err)
	}
	m.notes.refresh()

	m = press(t, m, "tab", "enter")
	if got := s.NotesPad().CurrentNote; got != "standup summary" {
		t.Fatalf("enter should copy the recent note into the draft, got %q", got)
	}
	if !m.notes.editing() {
		t.Error("loading a note should drop into the editor")
	}
}

func TestExternalStoreChangeReloadsPanels(t *testing.T) {
	m, s := newTestApp(t)

	if len(m.tasks.tasks) != 0 {
		t.Fatal("precondition: no tasks")
	}

	// Simulate the CLI writing while the dashboard is open.
	if err := s.SaveTasks([]model.Task{{ID: "t1", Text: "from the cli", CreatedAt: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	m.lastMod = time.Time{} // force the mod-time comparison to trip
	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(appModel)

	if len(m.tasks.tasks) != 1 || m.tasks.tasks[0].Text != "from the cli" {
		t.Fatalf("tick should reload externally written tasks, got %v", m.tasks.tasks)
	}
}
