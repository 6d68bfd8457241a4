package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"healthbot-backend/internal/bot"
	"healthbot-backend/internal/models"
)

// greetingText seeds a fresh transcript.
const greetingText = "Hi! I’m your Health-Care Assistant 🤍 How can I help you today?"

// ConversationService orchestrates turn-taking for a single conversation
// session: it owns the transcript, the composing indicator, and the
// reminder-creation flow, and routes each user submission to the flow or
// the keyword responder.
//
// turnMu serializes the two external triggers (user submission, scheduler
// notification) so no two are ever processed concurrently and no input
// reaches the data layer mid reply-delay. mu guards only the transcript
// slice, so reads stay responsive while a reply is being composed.
type ConversationService struct {
	reminderService *ReminderService
	replyDelay      time.Duration

	turnMu sync.Mutex
	flow   *bot.ReminderFlow

	mu       sync.Mutex
	messages []models.Message

	composing atomic.Bool
}

// NewConversationService creates a session whose transcript is seeded with
// the assistant greeting. replyDelay is the simulated thinking time between
// the user message and the bot reply.
func NewConversationService(reminderService *ReminderService, replyDelay time.Duration) *ConversationService {
	s := &ConversationService{
		reminderService: reminderService,
		replyDelay:      replyDelay,
		messages:        []models.Message{models.NewMessage(models.RoleBot, greetingText)},
	}
	s.flow = bot.NewReminderFlow(func(name, timeStr string) (models.Reminder, error) {
		return reminderService.Create(context.Background(), name, timeStr)
	})
	return s
}

// Submit processes one user submission. Empty or whitespace-only input is a
// no-op and returns (nil, nil), leaving the transcript unchanged. Otherwise
// the user message is appended, the reply delay elapses, and the resolved
// bot reply is appended.
func (s *ConversationService) Submit(ctx context.Context, text string) (*models.SubmitMessageResponse, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	s.turnMu.Lock()
	defer s.turnMu.Unlock()

	userMsg := models.NewMessage(models.RoleUser, trimmed)
	s.append(userMsg)

	s.composing.Store(true)
	defer s.composing.Store(false)

	// Simulated thinking time.
	if s.replyDelay > 0 {
		select {
		case <-time.After(s.replyDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	reply := s.resolve(trimmed)

	botMsg := models.NewMessage(models.RoleBot, reply.Text)
	s.append(botMsg)

	return &models.SubmitMessageResponse{
		UserMessage: userMsg,
		BotMessage:  botMsg,
		Suggestions: reply.Suggestions,
	}, nil
}

// resolve picks the reply for input. Routing order: an active flow always
// sees the input first; then the "show reminders" command; then the flow's
// idle trigger (any input containing "reminder"); finally the keyword
// responder. "show reminders" is checked ahead of the trigger because it
// contains the trigger keyword and would otherwise be unreachable.
func (s *ConversationService) resolve(input string) models.BotResponse {
	if s.flow.Active() {
		reply, _ := s.flow.Handle(input)
		return reply
	}

	if strings.EqualFold(input, models.ActionShowReminders) {
		return s.listRemindersReply()
	}

	if reply, consumed := s.flow.Handle(input); consumed {
		return reply
	}

	return bot.Respond(input)
}

// listRemindersReply renders the "show reminders" listing message.
func (s *ConversationService) listRemindersReply() models.BotResponse {
	reminders := s.reminderService.List()
	if len(reminders) == 0 {
		return models.BotResponse{
			Text:        "You have no active reminders. Would you like to set one?",
			Suggestions: []string{models.ActionMedicineReminder},
		}
	}

	var b strings.Builder
	b.WriteString("Here are your current medicine reminders:")
	for _, r := range reminders {
		status := "pending"
		if r.Taken {
			status = "taken"
		}
		fmt.Fprintf(&b, "\n- **%s** at **%s** (%s)", r.MedicineName, r.Time, status)
	}
	return models.BotResponse{Text: b.String()}
}

// Notify appends a bot message directly to the transcript, bypassing
// Submit. Used by the reminder scheduler.
func (s *ConversationService) Notify(text string) {
	s.turnMu.Lock()
	defer s.turnMu.Unlock()

	s.append(models.NewMessage(models.RoleBot, text))
	log.Printf("[ConversationService] notification appended: %s", text)
}

func (s *ConversationService) append(msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Transcript returns a copy of the message sequence in display order.
func (s *ConversationService) Transcript() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Composing reports whether a reply is currently being resolved.
func (s *ConversationService) Composing() bool {
	return s.composing.Load()
}
