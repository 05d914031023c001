// Package store is the persisted-slot layer: a named slot holds one
// JSON-serializable value (a record collection, a settings object, a scalar)
// and every mutation replaces the durable copy whole. Callers read-modify-
// write entire structures; there is no partial update and no transaction
// boundary across slots. Each slot has exactly one writer widget by
// convention.
package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const (
	sqliteFileName = "devdash.sqlite"
	legacyFileName = "slots.json"
)

// Slot keys. These are the durable names; renaming one orphans user data.
const (
	SlotTasks         = "dev-dashboard-tasks"
	SlotNotes         = "dev-dashboard-notes"
	SlotPrompts       = "dev-dashboard-prompts"
	SlotSnippets      = "dev-dashboard-snippets"
	SlotLearningLog   = "dev-dashboard-learning-log"
	SlotQuickLinks    = "dev-dashboard-quick-links"
	SlotConversations = "dev-dashboard-ai-conversations"
	SlotPomodoro      = "dev-dashboard-pomodoro"
	SlotModuleOrder   = "dev-dashboard-module-order"
	SlotSettings      = "dev-dashboard-settings"

	// Per-widget panel heights are independent slots, e.g.
	// dev-dashboard-prompt-height.
	slotHeightSuffix = "-height"
)

type Store struct {
	Dir string

	// Diagnostics only. Write failures are logged here and otherwise
	// swallowed; the in-memory value stays authoritative for the session.
	Log *zap.Logger
}

func New(dir string, log *zap.Logger) Store {
	if log == nil {
		log = zap.NewNop()
	}
	return Store{Dir: dir, Log: log}
}

// DefaultDir resolves the dashboard directory: $DEVDASH_DIR if set, else
// ~/.devdash.
func DefaultDir() (string, error) {
	if env := os.Getenv("DEVDASH_DIR"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".devdash"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(filepath.Clean(s.Dir), sqliteFileName)
}

func (s Store) legacyPath() string {
	return filepath.Join(filepath.Clean(s.Dir), legacyFileName)
}

func (s Store) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// ModTime reports when the durable state last changed, for cheap
// change-detection polling from the TUI.
func (s Store) ModTime() time.Time {
	st, err := os.Stat(s.sqlitePath())
	if err != nil {
		return time.Time{}
	}
	return st.ModTime()
}

// ReadSlot deserializes the slot named key into a value of type T. On
// absence or deserialization failure it returns def and writes nothing (the
// slot is created lazily by the first write).
func ReadSlot[T any](s Store, key string, def T) T {
	raw, ok, err := s.readRaw(context.Background(), key)
	if err != nil {
		s.logger().Warn("slot read failed", zap.String("key", key), zap.Error(err))
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger().Warn("slot holds malformed value", zap.String("key", key), zap.Error(err))
		return def
	}
	return v
}

// WriteSlot serializes value and stores it under key, fully replacing any
// prior content. Failures are logged and returned; callers for whom
// durability is best-effort may ignore the error.
func WriteSlot[T any](s Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger().Warn("slot value not serializable", zap.String("key", key), zap.Error(err))
		return err
	}
	if err := s.writeRaw(context.Background(), key, raw); err != nil {
		s.logger().Warn("slot write failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// DeleteSlot removes the slot entirely, so the next read falls back to the
// caller's default. Used by layout reset.
func (s Store) DeleteSlot(key string) error {
	if err := s.deleteRaw(context.Background(), key); err != nil {
		s.logger().Warn("slot delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
