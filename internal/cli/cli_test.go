package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"devdash/internal/model"
)

// run executes the root command in-process against an isolated store dir and
// returns decoded stdout.
func run(t *testing.T, dir string, args ...string) []byte {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("devdash %v: %v\nstderr:\n%s", args, err, errOut.String())
	}
	return out.Bytes()
}

func runErr(t *testing.T, dir string, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	return cmd.Execute()
}

func TestTasksLifecycle(t *testing.T) {
	dir := t.TempDir()

	var first, second model.Task
	if err := json.Unmarshal(run(t, dir, "tasks", "add", "write release notes"), &first); err != nil {
		t.Fatalf("decode add: %v", err)
	}
	if err := json.Unmarshal(run(t, dir, "tasks", "add", "review PRs"), &second); err != nil {
		t.Fatalf("decode add: %v", err)
	}

	var tasks []model.Task
	if err := json.Unmarshal(run(t, dir, "tasks", "list"), &tasks); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	// New tasks land at the bottom.
	if tasks[0].ID != first.ID || tasks[1].ID != second.ID {
		t.Fatalf("tasks out of order: %v", tasks)
	}

	var toggled model.Task
	if err := json.Unmarshal(run(t, dir, "tasks", "toggle", first.ID), &toggled); err != nil {
		t.Fatalf("decode toggle: %v", err)
	}
	if !toggled.Completed {
		t.Fatal("toggle did not complete the task")
	}

	run(t, dir, "tasks", "rm", second.ID)
	if err := json.Unmarshal(run(t, dir, "tasks", "list"), &tasks); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != first.ID {
		t.Fatalf("expected only the first task to survive: %v", tasks)
	}

	if err := runErr(t, dir, "tasks", "toggle", "no-such-id"); err == nil {
		t.Fatal("expected toggle of unknown id to fail")
	}
}

func TestNotesSaveClearsDraft(t *testing.T) {
	dir := t.TempDir()

	run(t, dir, "notes", "set", "remember the retro")
	var pad model.NotesPad
	if err := json.Unmarshal(run(t, dir, "notes", "save"), &pad); err != nil {
		t.Fatalf("decode save: %v", err)
	}
	if pad.CurrentNote != "" {
		t.Fatalf("draft should be cleared after save, got %q", pad.CurrentNote)
	}
	if len(pad.RecentNotes) != 1 || pad.RecentNotes[0].Content != "remember the retro" {
		t.Fatalf("snapshot missing from recent notes: %v", pad.RecentNotes)
	}

	if err := runErr(t, dir, "notes", "save"); err == nil {
		t.Fatal("expected save of empty draft to fail")
	}
}

func TestPromptsListPipeline(t *testing.T) {
	dir := t.TempDir()

	// The store seeds default prompts; add one with a distinctive marker.
	run(t, dir, "prompts", "add", "Unique Marker Prompt", "template body xyzq", "--category", "Testing")

	var res struct {
		Page       int            `json:"page"`
		TotalPages int            `json:"totalPages"`
		Total      int            `json:"total"`
		Prompts    []model.Prompt `json:"prompts"`
	}
	if err := json.Unmarshal(run(t, dir, "prompts", "list", "--search", "xyzq"), &res); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if res.Total != 1 || len(res.Prompts) != 1 {
		t.Fatalf("search should match exactly the added prompt: %+v", res)
	}
	if res.Prompts[0].Title != "Unique Marker Prompt" {
		t.Fatalf("wrong prompt matched: %+v", res.Prompts[0])
	}

	if err := json.Unmarshal(run(t, dir, "prompts", "list", "--category", "Testing"), &res); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if res.Total != 1 {
		t.Fatalf("category filter should isolate the added prompt: %+v", res)
	}

	out := run(t, dir, "prompts", "copy", res.Prompts[0].ID)
	if strings.TrimSpace(string(out)) != "template body xyzq" {
		t.Fatalf("copy should print the template, got %q", out)
	}
	if err := json.Unmarshal(run(t, dir, "prompts", "list", "--search", "xyzq"), &res); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if res.Prompts[0].UsageCount != 1 {
		t.Fatalf("copy should bump usage count: %+v", res.Prompts[0])
	}
}

func TestPromptRecentSortPrefersLastUsed(t *testing.T) {
	used := model.Prompt{ID: "a", Title: "old but copied", CreatedAt: 100, LastUsed: 1000}
	fresh := model.Prompt{ID: "b", Title: "newer, never copied", CreatedAt: 500}

	less := promptLess("recent")
	if !less(used, fresh) || less(fresh, used) {
		t.Fatal("a recently copied prompt should outrank a merely newer one")
	}
}

func TestSnippetsCopyBumpsCount(t *testing.T) {
	dir := t.TempDir()

	var sn model.Snippet
	if err := json.Unmarshal(run(t, dir, "snippets", "add", "ctx timeout", "ctx, cancel := context.WithTimeout(ctx, d)", "--language", "go"), &sn); err != nil {
		t.Fatalf("decode add: %v", err)
	}

	run(t, dir, "snippets", "copy", sn.ID)
	run(t, dir, "snippets", "copy", sn.ID)

	var res struct {
		Snippets []model.Snippet `json:"snippets"`
	}
	if err := json.Unmarshal(run(t, dir, "snippets", "list", "--search", "ctx timeout"), &res); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(res.Snippets) != 1 || res.Snippets[0].CopiedCount != 2 {
		t.Fatalf("expected copied count 2: %+v", res.Snippets)
	}
}

func TestAILogAndClear(t *testing.T) {
	dir := t.TempDir()

	run(t, dir, "ai", "log", "claude", "generics question")
	var convs []model.Conversation
	if err := json.Unmarshal(run(t, dir, "ai", "list"), &convs); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(convs) != 1 || convs[0].Platform != model.PlatformClaude {
		t.Fatalf("expected one claude session: %v", convs)
	}

	var cleared map[string]int
	if err := json.Unmarshal(run(t, dir, "ai", "clear"), &cleared); err != nil {
		t.Fatalf("decode clear: %v", err)
	}
	if cleared["deleted"] != 1 {
		t.Fatalf("expected 1 deleted, got %d", cleared["deleted"])
	}

	if err := runErr(t, dir, "ai", "log", "gemini", "nope"); err == nil {
		t.Fatal("expected unknown platform to fail")
	}
}

func TestPomodoroStatusDefaults(t *testing.T) {
	dir := t.TempDir()

	var st map[string]any
	if err := json.Unmarshal(run(t, dir, "pomodoro", "status"), &st); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if st["clock"] != "25:00" {
		t.Fatalf("fresh timer should read 25:00, got %v", st["clock"])
	}
	if st["mode"] != "work" {
		t.Fatalf("fresh timer should be in work mode, got %v", st["mode"])
	}
	if st["activeTask"] != "No active task" {
		t.Fatalf("empty task list should report no active task, got %v", st["activeTask"])
	}
}

func TestSettingsPageSizeFlowsIntoLists(t *testing.T) {
	dir := t.TempDir()

	var cfg model.Settings
	if err := json.Unmarshal(run(t, dir, "settings", "set", "--page-size", "2"), &cfg); err != nil {
		t.Fatalf("decode set: %v", err)
	}
	if cfg.PageSize != 2 {
		t.Fatalf("expected page size 2, got %d", cfg.PageSize)
	}
	if cfg.WorkMinutes != 25 {
		t.Fatalf("untouched settings should keep defaults, got %d", cfg.WorkMinutes)
	}

	var res struct {
		TotalPages int `json:"totalPages"`
		Total      int `json:"total"`
	}
	run(t, dir, "prompts", "add", "P1", "zqbatch one")
	run(t, dir, "prompts", "add", "P2", "zqbatch two")
	run(t, dir, "prompts", "add", "P3", "zqbatch three")
	if err := json.Unmarshal(run(t, dir, "prompts", "list", "--search", "zqbatch"), &res); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if res.Total != 3 || res.TotalPages != 2 {
		t.Fatalf("page size 2 over 3 prompts should give 2 pages, got %+v", res)
	}

	if err := runErr(t, dir, "settings", "set", "--page-size", "0"); err == nil {
		t.Fatal("page size below 1 should be rejected")
	}
}

func TestLayoutShowAndReset(t *testing.T) {
	dir := t.TempDir()

	var order []model.ModuleID
	if err := json.Unmarshal(run(t, dir, "layout", "show"), &order); err != nil {
		t.Fatalf("decode show: %v", err)
	}
	defaults := model.DefaultModuleOrder()
	if len(order) != len(defaults) {
		t.Fatalf("expected %d modules, got %d", len(defaults), len(order))
	}
	for i := range defaults {
		if order[i] != defaults[i] {
			t.Fatalf("fresh order should be the default: %v", order)
		}
	}

	if err := json.Unmarshal(run(t, dir, "layout", "reset"), &order); err != nil {
		t.Fatalf("decode reset: %v", err)
	}
	if order[0] != model.ModuleTasks {
		t.Fatalf("reset should restore defaults: %v", order)
	}
}
