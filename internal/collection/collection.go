// Package collection provides the generic CRUD operations shared by every
// widget's record list. All operations are pure: they return a new slice and
// leave the input untouched, so callers can write-through to the store and
// re-render from the result.
package collection

import (
	"strconv"
	"sync"
	"time"
)

// Record is any widget record addressable by id.
type Record interface {
	RecordID() string
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a wall-clock-derived id (milliseconds since epoch, decimal).
// Consecutive calls within the same millisecond bump the value so ids stay
// unique within a process, matching the monotonic contract the update/delete
// targeting relies on.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}

// Now returns the creation/update timestamp for new records.
func Now() int64 {
	return time.Now().UnixMilli()
}

// Prepend inserts rec at the front (newest-first display order by
// construction). Used by prompts, snippets, links, log entries, notes and
// conversations.
func Prepend[T Record](items []T, rec T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, rec)
	out = append(out, items...)
	return out
}

// Append inserts rec at the back. The task list is the one widget that
// appends on create; keep that per-widget position, it is part of the
// contract.
func Append[T Record](items []T, rec T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, rec)
	return out
}

// Patch replaces the record whose id matches with patch(old). Records that
// don't match are copied through positionally unchanged. A missing id is a
// no-op (the UI only issues updates for ids it just displayed); the bool
// reports whether anything matched.
func Patch[T Record](items []T, id string, patch func(T) T) ([]T, bool) {
	out := make([]T, len(items))
	matched := false
	for i, it := range items {
		if it.RecordID() == id {
			out[i] = patch(it)
			matched = true
			continue
		}
		out[i] = it
	}
	return out, matched
}

// Delete removes the matching record, keeping the remainder in order. The
// operation itself is unconditional; confirmation is the caller's concern.
func Delete[T Record](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.RecordID() == id {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Find returns the record with the given id.
func Find[T Record](items []T, id string) (T, bool) {
	for _, it := range items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
