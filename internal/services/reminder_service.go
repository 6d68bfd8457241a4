package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"healthbot-backend/internal/models"
	"healthbot-backend/internal/store"
)

// ReminderService owns the reminder collection. The collection lives in
// memory in insertion order and is written through to the durable store
// wholesale after every mutation. A storage failure is logged and the
// in-memory collection keeps serving; it never surfaces to the transcript.
type ReminderService struct {
	store store.Store

	mu        sync.Mutex
	reminders []models.Reminder
}

// NewReminderService loads the persisted collection from st. An absent
// record yields an empty collection; a read failure is logged and degrades
// to an empty in-memory collection rather than failing startup.
func NewReminderService(ctx context.Context, st store.Store) *ReminderService {
	reminders, err := st.LoadReminders(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("WARN [ReminderService] failed to load reminders, starting empty: %v", err)
		}
		reminders = nil
	}

	return &ReminderService{
		store:     st,
		reminders: reminders,
	}
}

// List returns the reminders in insertion order.
func (s *ReminderService) List() []models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// Create validates and appends a new reminder with Taken=false.
// Returns a *ValidationError when the medicine name is empty or the time
// does not match the HH:mm pattern.
func (s *ReminderService) Create(ctx context.Context, medicineName, timeStr string) (models.Reminder, error) {
	if strings.TrimSpace(medicineName) == "" {
		return models.Reminder{}, newValidationError("medicine name must not be empty")
	}
	if !models.ValidReminderTime(timeStr) {
		return models.Reminder{}, newValidationError("time must be in 24-hour HH:mm format")
	}

	reminder := models.Reminder{
		ID:           uuid.New(),
		MedicineName: medicineName,
		Time:         timeStr,
		Taken:        false,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reminders = append(s.reminders, reminder)
	s.persistLocked(ctx)

	log.Printf("[ReminderService] created reminder %s (%s at %s)", reminder.ID, reminder.MedicineName, reminder.Time)
	return reminder, nil
}

// ToggleTaken flips the taken flag of the reminder with the given id.
// Returns store.ErrNotFound when the id is absent; nothing is mutated then.
func (s *ReminderService) ToggleTaken(ctx context.Context, id uuid.UUID) (models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders[i].Taken = !s.reminders[i].Taken
			s.persistLocked(ctx)
			return s.reminders[i], nil
		}
	}
	return models.Reminder{}, store.ErrNotFound
}

// Delete removes the reminder with the given id. Absent ids are a no-op.
func (s *ReminderService) Delete(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

// Clear removes all reminders.
func (s *ReminderService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reminders = nil
	s.persistLocked(ctx)
}

// persistLocked writes the full collection through to the store.
// Callers must hold s.mu.
func (s *ReminderService) persistLocked(ctx context.Context) {
	if err := s.store.SaveReminders(ctx, s.reminders); err != nil {
		log.Printf("ERROR [ReminderService] failed to persist reminders: %v", err)
	}
}
