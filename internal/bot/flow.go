package bot

import (
	"log"
	"strings"

	"healthbot-backend/internal/models"
)

// FlowState enumerates the states of the reminder-creation dialogue.
type FlowState int

const (
	FlowIdle FlowState = iota
	FlowAwaitingName
	FlowAwaitingTime
)

func (s FlowState) String() string {
	switch s {
	case FlowAwaitingName:
		return "AWAITING_NAME"
	case FlowAwaitingTime:
		return "AWAITING_TIME"
	default:
		return "IDLE"
	}
}

// CreateReminderFunc commits a completed reminder. The flow validates the
// time format before calling it; the callback may still reject the value
// (e.g. a storage-level validation failure).
type CreateReminderFunc func(medicineName, timeStr string) (models.Reminder, error)

// ReminderFlow is the multi-turn state machine that collects a medicine
// name and a time and commits one reminder. A single instance serves the
// conversation; pendingName is only ever set while in FlowAwaitingTime and
// is discarded on every transition back to FlowIdle.
type ReminderFlow struct {
	state       FlowState
	pendingName string
	create      CreateReminderFunc
}

// NewReminderFlow creates an idle flow that commits reminders through create.
func NewReminderFlow(create CreateReminderFunc) *ReminderFlow {
	return &ReminderFlow{state: FlowIdle, create: create}
}

// State returns the current dialogue state.
func (f *ReminderFlow) State() FlowState {
	return f.state
}

// Active reports whether the flow is mid-collection and must see the next
// input before any other routing applies.
func (f *ReminderFlow) Active() bool {
	return f.state != FlowIdle
}

// Handle offers input to the flow. The second return value reports whether
// the flow consumed the input; false means the caller should delegate to
// the keyword responder. The flow consumes everything while active, and
// while idle it consumes only inputs containing the trigger keyword
// "reminder" (case-insensitive).
func (f *ReminderFlow) Handle(input string) (models.BotResponse, bool) {
	switch f.state {
	case FlowAwaitingName:
		return f.handleName(input), true
	case FlowAwaitingTime:
		return f.handleTime(input), true
	default:
		if strings.Contains(strings.ToLower(input), "reminder") {
			return f.Start(), true
		}
		return models.BotResponse{}, false
	}
}

// Start moves the flow from idle into name collection. It is invoked by
// Handle on the trigger keyword and directly by the controller for the
// "Medicine Reminder" quick action.
func (f *ReminderFlow) Start() models.BotResponse {
	f.state = FlowAwaitingName
	f.pendingName = ""
	return models.BotResponse{
		Text:        "I can help you set a medicine reminder! What is the name of the medicine?",
		Suggestions: []string{models.ActionCancel},
	}
}

func (f *ReminderFlow) handleName(input string) models.BotResponse {
	if strings.EqualFold(input, models.ActionCancel) {
		f.reset()
		return models.BotResponse{Text: "Reminder setup cancelled. How else can I help?"}
	}

	f.pendingName = input
	f.state = FlowAwaitingTime
	return models.BotResponse{
		Text:        "Got it: " + input + ". What time should I remind you? (Please use HH:mm format, e.g., 08:30 or 20:15)",
		Suggestions: []string{models.ActionCancel},
	}
}

func (f *ReminderFlow) handleTime(input string) models.BotResponse {
	if strings.EqualFold(input, models.ActionCancel) {
		f.reset()
		return models.BotResponse{Text: "Reminder setup cancelled."}
	}

	if !models.ValidReminderTime(input) {
		// Stay in FlowAwaitingTime; nothing is persisted.
		return models.BotResponse{
			Text:        "That doesn't look like a valid time. Please use the format HH:mm (e.g., 14:30).",
			Suggestions: []string{models.ActionCancel},
		}
	}

	reminder, err := f.create(f.pendingName, input)
	if err != nil {
		log.Printf("ERROR [ReminderFlow] failed to create reminder %q at %q: %v", f.pendingName, input, err)
		return models.BotResponse{
			Text:        "Sorry, I couldn't save that reminder: " + err.Error(),
			Suggestions: []string{models.ActionCancel},
		}
	}

	f.reset()
	return models.BotResponse{
		Text:        "Perfect! I've set a reminder for **" + reminder.MedicineName + "** at **" + reminder.Time + "**. I'll notify you here!",
		Suggestions: []string{models.ActionShowReminders, models.ActionSymptoms},
	}
}

func (f *ReminderFlow) reset() {
	f.state = FlowIdle
	f.pendingName = ""
}
