package store

import (
	"devdash/internal/model"
)

// Typed slot accessors. Reads substitute the widget default on an absent or
// corrupt slot; saves replace the whole value.

func (s Store) Tasks() []model.Task {
	return ReadSlot(s, SlotTasks, []model.Task{})
}

func (s Store) SaveTasks(tasks []model.Task) error {
	return WriteSlot(s, SlotTasks, tasks)
}

func (s Store) NotesPad() model.NotesPad {
	return ReadSlot(s, SlotNotes, model.NotesPad{RecentNotes: []model.Note{}})
}

func (s Store) SaveNotesPad(pad model.NotesPad) error {
	return WriteSlot(s, SlotNotes, pad)
}

func (s Store) Prompts() []model.Prompt {
	return ReadSlot(s, SlotPrompts, model.DefaultPrompts())
}

func (s Store) SavePrompts(prompts []model.Prompt) error {
	return WriteSlot(s, SlotPrompts, prompts)
}

func (s Store) Snippets() []model.Snippet {
	return ReadSlot(s, SlotSnippets, model.DefaultSnippets())
}

func (s Store) SaveSnippets(snippets []model.Snippet) error {
	return WriteSlot(s, SlotSnippets, snippets)
}

func (s Store) LearningLogs() []model.LogEntry {
	return ReadSlot(s, SlotLearningLog, model.DefaultLearningLogs())
}

func (s Store) SaveLearningLogs(logs []model.LogEntry) error {
	return WriteSlot(s, SlotLearningLog, logs)
}

func (s Store) Links() []model.Link {
	return ReadSlot(s, SlotQuickLinks, model.DefaultLinks())
}

func (s Store) SaveLinks(links []model.Link) error {
	return WriteSlot(s, SlotQuickLinks, links)
}

func (s Store) Conversations() []model.Conversation {
	return ReadSlot(s, SlotConversations, []model.Conversation{})
}

func (s Store) SaveConversations(convs []model.Conversation) error {
	return WriteSlot(s, SlotConversations, convs)
}

func (s Store) Pomodoro(def model.PomodoroState) model.PomodoroState {
	return ReadSlot(s, SlotPomodoro, def)
}

func (s Store) SavePomodoro(st model.PomodoroState) error {
	return WriteSlot(s, SlotPomodoro, st)
}

func (s Store) Settings() model.Settings {
	return ReadSlot(s, SlotSettings, model.DefaultSettings())
}

func (s Store) SaveSettings(cfg model.Settings) error {
	return WriteSlot(s, SlotSettings, cfg)
}

func (s Store) ModuleOrder() []model.ModuleID {
	return ReadSlot(s, SlotModuleOrder, model.DefaultModuleOrder())
}

func (s Store) SaveModuleOrder(order []model.ModuleID) error {
	return WriteSlot(s, SlotModuleOrder, order)
}

func heightKey(widget model.ModuleID) string {
	return "dev-dashboard-" + string(widget) + slotHeightSuffix
}

// PanelHeight returns the persisted pixel-row height for one widget panel.
func (s Store) PanelHeight(widget model.ModuleID, def int) int {
	return ReadSlot(s, heightKey(widget), def)
}

func (s Store) SavePanelHeight(widget model.ModuleID, height int) error {
	return WriteSlot(s, heightKey(widget), height)
}

// ActiveTaskSummary is the one sanctioned cross-widget read: the pomodoro
// panel shows the first uncompleted task. It is a read-only snapshot with no
// subscription, so it may be stale until the next render.
func (s Store) ActiveTaskSummary() string {
	for _, t := range s.Tasks() {
		if !t.Completed {
			return t.Text
		}
	}
	return "No active task"
}
