// Package scheduler implements the periodic reminder check: once per tick
// it compares the current wall-clock minute against every stored reminder
// and pushes a notification message into the conversation for each match.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"healthbot-backend/internal/models"
)

// ReminderSource supplies the current reminder collection.
type ReminderSource interface {
	List() []models.Reminder
}

// Notifier receives notification messages for the conversation transcript.
type Notifier interface {
	Notify(text string)
}

// Scheduler runs the periodic reminder check. It is deliberately
// best-effort: there is no de-duplication across ticks within the same
// minute and no day-boundary bookkeeping. This is a courtesy nudge in the
// conversation, not a medical alarm system.
type Scheduler struct {
	reminders ReminderSource
	notifier  Notifier
	interval  time.Duration
	now       func() time.Time
}

// New creates a scheduler checking reminders every interval.
func New(reminders ReminderSource, notifier Notifier, interval time.Duration) *Scheduler {
	return &Scheduler{
		reminders: reminders,
		notifier:  notifier,
		interval:  interval,
		now:       time.Now,
	}
}

// Run ticks until ctx is cancelled. The ticker is owned by this call, so
// cancelling the session context is all that is needed to tear the
// scheduler down without leaking a timer.
func (s *Scheduler) Run(ctx context.Context) {
	log.Printf("[Scheduler] starting, checking reminders every %s", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[Scheduler] stopped: %v", ctx.Err())
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick performs one reminder check: every reminder whose time equals the
// current minute and whose taken flag is false produces one notification.
func (s *Scheduler) Tick() {
	current := s.now().Format("15:04")

	for _, r := range s.reminders.List() {
		if r.Time == current && !r.Taken {
			s.notifier.Notify(fmt.Sprintf("⏰ Reminder: It's time to take your medicine: **%s**.", r.MedicineName))
		}
	}
}
