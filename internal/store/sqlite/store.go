package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"healthbot-backend/internal/models"
	"healthbot-backend/internal/store"
)

// Compile-time check to ensure SqliteStore implements store.Store
var _ store.Store = (*SqliteStore)(nil)

// remindersKey names the single record holding the full reminder
// collection in the app_state table.
const remindersKey = "reminders"

// SqliteStore persists application state in a local SQLite database through
// a small key-value table. Access is synchronous and local; there is exactly
// one writer at a time by construction, so no additional locking is needed.
type SqliteStore struct {
	db *sql.DB
}

// Open opens (and if necessary creates) the database at path and ensures
// the app_state table exists.
func Open(path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database at %s: %w", path, err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS app_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure app_state schema: %w", err)
	}

	log.Printf("[SqliteStore] opened database at %s", path)
	return &SqliteStore{db: db}, nil
}

// LoadReminders reads the full reminder collection.
// Returns store.ErrNotFound if the record has never been written.
func (s *SqliteStore) LoadReminders(ctx context.Context) ([]models.Reminder, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, remindersKey,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("database error loading reminders: %w", err)
	}

	var reminders []models.Reminder
	if err := json.Unmarshal([]byte(raw), &reminders); err != nil {
		return nil, fmt.Errorf("failed to decode stored reminders: %w", err)
	}

	log.Printf("[SqliteStore] loaded %d reminder(s)", len(reminders))
	return reminders, nil
}

// SaveReminders overwrites the stored collection with reminders.
func (s *SqliteStore) SaveReminders(ctx context.Context, reminders []models.Reminder) error {
	if reminders == nil {
		reminders = []models.Reminder{}
	}

	raw, err := json.Marshal(reminders)
	if err != nil {
		return fmt.Errorf("failed to encode reminders: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		remindersKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("database error saving reminders: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}
