package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthbot-backend/internal/models"
)

type staticReminders []models.Reminder

func (s staticReminders) List() []models.Reminder { return s }

type captureNotifier struct {
	texts []string
}

func (c *captureNotifier) Notify(text string) {
	c.texts = append(c.texts, text)
}

func newTestScheduler(reminders []models.Reminder, at string) (*Scheduler, *captureNotifier) {
	notifier := &captureNotifier{}
	s := New(staticReminders(reminders), notifier, time.Minute)
	clock, _ := time.Parse("15:04", at)
	s.now = func() time.Time { return clock }
	return s, notifier
}

func TestTickNotifiesMatchingUntakenReminder(t *testing.T) {
	s, notifier := newTestScheduler([]models.Reminder{
		{ID: uuid.New(), MedicineName: "Aspirin", Time: "08:30", Taken: false},
	}, "08:30")

	s.Tick()

	require.Len(t, notifier.texts, 1, "one tick must produce exactly one notification")
	assert.Equal(t, "⏰ Reminder: It's time to take your medicine: **Aspirin**.", notifier.texts[0])
}

func TestTickSkipsTakenReminders(t *testing.T) {
	s, notifier := newTestScheduler([]models.Reminder{
		{ID: uuid.New(), MedicineName: "Aspirin", Time: "08:30", Taken: true},
	}, "08:30")

	s.Tick()

	assert.Empty(t, notifier.texts, "taken reminders never notify, even on a time match")
}

func TestTickSkipsNonMatchingTimes(t *testing.T) {
	s, notifier := newTestScheduler([]models.Reminder{
		{ID: uuid.New(), MedicineName: "Aspirin", Time: "08:30"},
		{ID: uuid.New(), MedicineName: "Ibuprofen", Time: "20:15"},
	}, "12:00")

	s.Tick()

	assert.Empty(t, notifier.texts)
}

func TestTickNotifiesEachMatchingReminder(t *testing.T) {
	s, notifier := newTestScheduler([]models.Reminder{
		{ID: uuid.New(), MedicineName: "Aspirin", Time: "08:30"},
		{ID: uuid.New(), MedicineName: "VitaminD", Time: "08:30"},
		{ID: uuid.New(), MedicineName: "Ibuprofen", Time: "09:00"},
	}, "08:30")

	s.Tick()

	require.Len(t, notifier.texts, 2)
	assert.Contains(t, notifier.texts[0], "Aspirin")
	assert.Contains(t, notifier.texts[1], "VitaminD")
}

func TestRunStopsOnContextCancellation(t *testing.T) {
	s, _ := newTestScheduler(nil, "08:30")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}
