package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devdash/internal/model"
)

func TestNewID_MonotonicUnique(t *testing.T) {
	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
		if prev != "" {
			assert.Greater(t, id, "", "id must be non-empty")
			assert.True(t, len(id) > len(prev) || id > prev, "ids must increase: %q then %q", prev, id)
		}
		prev = id
	}
}

func TestPrependAppend_InsertPosition(t *testing.T) {
	tasks := []model.Task{{ID: "a", Text: "first"}}

	appended := Append(tasks, model.Task{ID: "b", Text: "second"})
	require.Len(t, appended, 2)
	assert.Equal(t, "a", appended[0].ID)
	assert.Equal(t, "b", appended[1].ID)

	prompts := []model.Prompt{{ID: "p1"}}
	prepended := Prepend(prompts, model.Prompt{ID: "p2"})
	require.Len(t, prepended, 2)
	assert.Equal(t, "p2", prepended[0].ID)

	// Inputs must be untouched.
	assert.Len(t, tasks, 1)
	assert.Len(t, prompts, 1)
}

func TestPatch_RoundTrip(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Text: "write tests", CreatedAt: 100},
		{ID: "2", Text: "review", CreatedAt: 200},
	}

	out, ok := Patch(tasks, "1", func(tk model.Task) model.Task {
		tk.Completed = true
		return tk
	})
	require.True(t, ok)

	// Exactly the patched field changed; order and other records intact.
	assert.True(t, out[0].Completed)
	assert.Equal(t, "write tests", out[0].Text)
	assert.Equal(t, int64(100), out[0].CreatedAt)
	assert.Equal(t, tasks[1], out[1])
	assert.False(t, tasks[0].Completed, "input slice must not be mutated")
}

func TestPatch_MissingIDIsNoop(t *testing.T) {
	tasks := []model.Task{{ID: "1", Text: "keep"}}
	out, ok := Patch(tasks, "nope", func(tk model.Task) model.Task {
		tk.Text = "changed"
		return tk
	})
	assert.False(t, ok)
	assert.Equal(t, tasks, out)
}

func TestDelete_StableRemainder(t *testing.T) {
	links := []model.Link{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	out := Delete(links, "b")
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "c", out[1].ID)

	// Deleting an unknown id leaves everything unchanged.
	same := Delete(links, "zzz")
	assert.Equal(t, links, same)
}

func TestFind(t *testing.T) {
	notes := []model.Note{{ID: "n1", Content: "hello"}}
	got, ok := Find(notes, "n1")
	require.True(t, ok)
	assert.Equal(t, "hello", got.Content)

	_, ok = Find(notes, "n2")
	assert.False(t, ok)
}
