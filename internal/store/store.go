package store

import (
	"context"
	"errors"

	"healthbot-backend/internal/models"
)

// ErrNotFound is returned when the named reminders record does not exist
// yet (fresh database). Callers treat it as an empty collection.
var ErrNotFound = errors.New("record not found")

// Store defines the durable key-value abstraction backing the reminder
// collection. The layout is deliberately simple: one named record holding
// the full collection as an ordered JSON sequence, read once at startup
// and overwritten wholesale on every mutation (write-through, no batching).
// This allows for mocking in tests and potential backend switching.
type Store interface {
	LoadReminders(ctx context.Context) ([]models.Reminder, error)
	SaveReminders(ctx context.Context, reminders []models.Reminder) error
	Close() error
}
