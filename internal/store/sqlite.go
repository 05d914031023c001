package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers (TUI and CLI may run at once);
	// busy_timeout avoids "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := s.migrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s Store) migrateSQLite(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS slots (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return s.importLegacySlots(ctx, db)
}

// importLegacySlots does a one-time import of a legacy slots.json dump
// (map of slot key to raw JSON value) into SQLite, preserving existing data
// from older versions. The file is left in place for forensics; SQLite is
// the only source of truth afterwards.
func (s Store) importLegacySlots(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM slots`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	b, err := os.ReadFile(s.legacyPath())
	if err != nil || len(b) == 0 {
		return nil
	}
	var legacy map[string]json.RawMessage
	if err := json.Unmarshal(b, &legacy); err != nil {
		s.logger().Warn("legacy slots.json is malformed, skipping import")
		return nil
	}
	nowMs := time.Now().UTC().UnixMilli()
	for key, raw := range legacy {
		if _, err := db.ExecContext(ctx,
			`INSERT OR REPLACE INTO slots(key, value, updated_at_unixms) VALUES(?, ?, ?)`,
			key, string(raw), nowMs); err != nil {
			return err
		}
	}
	return nil
}

func (s Store) readRaw(ctx context.Context, key string) ([]byte, bool, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, false, err
	}
	defer db.Close()

	var value string
	err = db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (s Store) writeRaw(ctx context.Context, key string, raw []byte) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	nowMs := time.Now().UTC().UnixMilli()
	_, err = db.ExecContext(ctx,
		`INSERT OR REPLACE INTO slots(key, value, updated_at_unixms) VALUES(?, ?, ?)`,
		key, string(raw), nowMs)
	return err
}

func (s Store) deleteRaw(ctx context.Context, key string) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key)
	return err
}
