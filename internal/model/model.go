package model

// Record types for every dashboard widget. Each collection is an ordered
// slice; insert position on create is part of the widget contract (tasks
// append, everything else prepends) so display order falls out of the data
// rather than a sort.

type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"`
}

// Note is one "save to recent" snapshot of the quick-notes pad.
type Note struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// NotesPad is the whole quick-notes slot: the autosaved draft plus the
// recent snapshots (newest first, capped).
type NotesPad struct {
	CurrentNote string `json:"currentNote"`
	RecentNotes []Note `json:"recentNotes"`
}

type Prompt struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Template   string   `json:"template"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags,omitempty"`
	Favorite   bool     `json:"favorite"`
	UsageCount int      `json:"usageCount"`
	CreatedAt  int64    `json:"createdAt"`
	LastUsed   int64    `json:"lastUsed,omitempty"`
}

// LastActivity is the "recent" sort key: a copy refreshes a prompt's
// recency, so LastUsed wins over CreatedAt whenever it is set.
func (p Prompt) LastActivity() int64 {
	if p.LastUsed != 0 {
		return p.LastUsed
	}
	return p.CreatedAt
}

type Snippet struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Code        string   `json:"code"`
	Language    string   `json:"language"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	CopiedCount int      `json:"copiedCount"`
	CreatedAt   int64    `json:"createdAt"`
}

type LogEntry struct {
	ID          string   `json:"id"`
	Week        string   `json:"week"`
	Date        string   `json:"date,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	KeyTakeaway string   `json:"keyTakeaway,omitempty"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

type Link struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Category  string `json:"category,omitempty"`
	Clicks    int    `json:"clicks"`
	CreatedAt int64  `json:"createdAt"`
}

type Platform string

const (
	PlatformClaude  Platform = "claude"
	PlatformChatGPT Platform = "chatgpt"
)

// Conversation is a logged external AI chat session (the assistant widget
// only launches and records; it never talks to a real model).
type Conversation struct {
	ID        string   `json:"id"`
	Platform  Platform `json:"platform"`
	Topic     string   `json:"topic"`
	Notes     string   `json:"notes,omitempty"`
	Timestamp int64    `json:"timestamp"`
}

// RecordID implementations so the generic collection helpers can target
// updates and deletes.

func (t Task) RecordID() string         { return t.ID }
func (n Note) RecordID() string         { return n.ID }
func (p Prompt) RecordID() string       { return p.ID }
func (s Snippet) RecordID() string      { return s.ID }
func (e LogEntry) RecordID() string     { return e.ID }
func (l Link) RecordID() string         { return l.ID }
func (c Conversation) RecordID() string { return c.ID }

// PomodoroPhase is the countdown mode.
type PomodoroPhase string

const (
	PhaseWork       PomodoroPhase = "work"
	PhaseShortBreak PomodoroPhase = "shortBreak"
	PhaseLongBreak  PomodoroPhase = "longBreak"
)

// PomodoroState is the persisted countdown slot. SessionDate is a calendar
// day string; a mismatch with "today" at load time resets SessionsCompleted.
type PomodoroState struct {
	TimeLeft          int           `json:"timeLeft"`
	IsActive          bool          `json:"isActive"`
	Mode              PomodoroPhase `json:"mode"`
	SessionsCompleted int           `json:"sessionsCompleted"`
	SessionDate       string        `json:"sessionDate"`
}

// ModuleID identifies one reorderable dashboard widget.
type ModuleID string

const (
	ModuleTasks       ModuleID = "tasks"
	ModuleNotes       ModuleID = "notes"
	ModulePomodoro    ModuleID = "pomodoro"
	ModulePrompts     ModuleID = "prompts"
	ModuleSnippets    ModuleID = "snippets"
	ModuleAssistant   ModuleID = "ai-assistant"
	ModuleLearningLog ModuleID = "log"
)

// DefaultModuleOrder returns the default widget permutation. Quick links is a
// side rail, not part of the reorderable set.
func DefaultModuleOrder() []ModuleID {
	return []ModuleID{
		ModuleTasks,
		ModuleNotes,
		ModulePomodoro,
		ModulePrompts,
		ModuleSnippets,
		ModuleAssistant,
		ModuleLearningLog,
	}
}

// Settings is the user-tunable slot. PageSize applies to every paginated
// widget list.
type Settings struct {
	PageSize               int `json:"pageSize"`
	WorkMinutes            int `json:"workMinutes"`
	ShortBreakMinutes      int `json:"shortBreakMinutes"`
	LongBreakMinutes       int `json:"longBreakMinutes"`
	SessionsUntilLongBreak int `json:"sessionsUntilLongBreak"`
}

func DefaultSettings() Settings {
	return Settings{
		PageSize:               5,
		WorkMinutes:            25,
		ShortBreakMinutes:      5,
		LongBreakMinutes:       15,
		SessionsUntilLongBreak: 4,
	}
}
