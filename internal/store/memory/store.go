package memory

import (
	"context"
	"sync"

	"healthbot-backend/internal/models"
	"healthbot-backend/internal/store"
)

// Compile-time check to ensure Store implements store.Store
var _ store.Store = (*Store)(nil)

// Store is an in-memory store.Store used by tests. It mimics the durable
// backends: loading before the first save reports store.ErrNotFound, and
// saved collections survive until the store value itself is dropped.
type Store struct {
	mu        sync.RWMutex
	reminders []models.Reminder
	written   bool
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) LoadReminders(ctx context.Context) ([]models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.written {
		return nil, store.ErrNotFound
	}
	out := make([]models.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out, nil
}

func (s *Store) SaveReminders(ctx context.Context, reminders []models.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reminders = make([]models.Reminder, len(reminders))
	copy(s.reminders, reminders)
	s.written = true
	return nil
}

func (s *Store) Close() error {
	return nil
}
