package store

import (
	"devdash/internal/collection"
	"devdash/internal/model"
)

// recentNotesCap bounds the quick-notes history: only the ten newest
// snapshots are kept.
const recentNotesCap = 10

// SnapshotDraft moves the current draft to the front of the recent list
// (capped) and clears the draft. Clearing is deliberate: "save to recent"
// hands the text off rather than forking it.
func SnapshotDraft(pad model.NotesPad) model.NotesPad {
	now := collection.Now()
	note := model.Note{
		ID:        collection.NewID(),
		Content:   pad.CurrentNote,
		CreatedAt: now,
		UpdatedAt: now,
	}
	recent := collection.Prepend(pad.RecentNotes, note)
	if len(recent) > recentNotesCap {
		recent = recent[:recentNotesCap]
	}
	return model.NotesPad{CurrentNote: "", RecentNotes: recent}
}
