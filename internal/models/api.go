package models

// --- Request Structs ---

// SubmitMessageRequest defines the body for posting a user message to the
// conversation. Suggestion chip labels are submitted through the same field,
// exactly as if the user had typed them.
type SubmitMessageRequest struct {
	Text string `json:"text"`
}

// CreateReminderRequest defines the body for creating a reminder directly,
// bypassing the conversational flow (used by the reminder panel UI).
type CreateReminderRequest struct {
	MedicineName string `json:"medicine_name"`
	Time         string `json:"time"` // 24-hour "HH:mm"
}

// --- Response Structs ---

// ErrorResponse defines the standard structure for API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SubmitMessageResponse is returned after a user submission has been
// resolved into a bot reply.
type SubmitMessageResponse struct {
	UserMessage Message  `json:"user_message"`
	BotMessage  Message  `json:"bot_message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ConversationResponse carries the full transcript plus the composing
// indicator for the presentation layer.
type ConversationResponse struct {
	Messages  []Message `json:"messages"`
	Composing bool      `json:"composing"`
}

// ListRemindersResponse wraps the reminder collection.
type ListRemindersResponse struct {
	Reminders []Reminder `json:"reminders"`
}

// ReminderResponse wraps a single reminder (create/toggle results).
type ReminderResponse struct {
	Reminder Reminder `json:"reminder"`
}

// --- Quick Actions ---

// Quick-action chip labels. These exact strings are part of the contract:
// they are surfaced as suggestions and recognized again as commands when a
// chip is clicked and its label is re-submitted as user text.
const (
	ActionSymptoms         = "Symptoms"
	ActionDiseases         = "Diseases"
	ActionMedicines        = "Medicines"
	ActionAppointment      = "Doctor Appointment"
	ActionEmergency        = "Emergency Help"
	ActionMedicineReminder = "Medicine Reminder"
	ActionShowReminders    = "Show Reminders"
	ActionCancel           = "Cancel"
)
