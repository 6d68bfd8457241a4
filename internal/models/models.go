package models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a transcript message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message represents a single entry in the conversation transcript.
// Messages are immutable once created; the transcript is append-only and
// insertion order is display order. Text may embed the lightweight
// **bold** markup delimiter understood by the presentation layer.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage builds a transcript message stamped with the current time.
func NewMessage(role Role, text string) Message {
	return Message{
		ID:        uuid.New(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// Reminder represents a scheduled medicine reminder.
// Time is always a 24-hour "HH:mm" string (see TimePattern in the services
// package); Taken starts false and is flipped by user action only — the
// scheduler never mutates a reminder.
type Reminder struct {
	ID           uuid.UUID `json:"id"`
	MedicineName string    `json:"medicine_name"`
	Time         string    `json:"time"`
	Taken        bool      `json:"taken"`
}

// timePattern accepts 24-hour "HH:mm" values, with an optional leading zero
// on the hour ("8:30" and "08:30" are both valid, "25:00" is not).
var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidReminderTime reports whether s is an acceptable reminder time.
// Validation is strictly format-based; past times are accepted.
func ValidReminderTime(s string) bool {
	return timePattern.MatchString(s)
}

// BotResponse is the transient reply produced by the responder or the
// reminder flow: the reply text plus optional quick-reply suggestion chips.
// It is never persisted.
type BotResponse struct {
	Text        string
	Suggestions []string
}
