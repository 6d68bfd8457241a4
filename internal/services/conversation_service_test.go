package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthbot-backend/internal/models"
	"healthbot-backend/internal/services"
	"healthbot-backend/internal/store/memory"
)

func newConversation(t *testing.T) (*services.ConversationService, *services.ReminderService) {
	t.Helper()
	reminderSvc := services.NewReminderService(context.Background(), memory.NewStore())
	// Zero reply delay keeps the tests fast; the delay path is exercised by
	// the context-cancellation test below.
	return services.NewConversationService(reminderSvc, 0), reminderSvc
}

func TestSubmitEmptyInputIsANoOp(t *testing.T) {
	svc, _ := newConversation(t)
	before := len(svc.Transcript())

	for _, input := range []string{"", "   ", "\t\n"} {
		resp, err := svc.Submit(context.Background(), input)
		require.NoError(t, err)
		assert.Nil(t, resp)
	}

	assert.Len(t, svc.Transcript(), before, "transcript length must be unchanged")
}

func TestTranscriptStartsWithGreeting(t *testing.T) {
	svc, _ := newConversation(t)

	transcript := svc.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, models.RoleBot, transcript[0].Role)
	assert.Contains(t, transcript[0].Text, "Health-Care Assistant")
}

func TestSubmitAppendsUserAndBotMessages(t *testing.T) {
	svc, _ := newConversation(t)

	resp, err := svc.Submit(context.Background(), "  I have a fever  ")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, models.RoleUser, resp.UserMessage.Role)
	assert.Equal(t, "I have a fever", resp.UserMessage.Text, "input is trimmed before it enters the transcript")
	assert.Equal(t, models.RoleBot, resp.BotMessage.Role)
	assert.Contains(t, resp.BotMessage.Text, "Fever is often a sign")

	transcript := svc.Transcript()
	require.Len(t, transcript, 3) // greeting + user + bot
	assert.Equal(t, resp.UserMessage.ID, transcript[1].ID)
	assert.Equal(t, resp.BotMessage.ID, transcript[2].ID)
}

func TestReminderRoundTripThroughConversation(t *testing.T) {
	svc, reminderSvc := newConversation(t)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, "set a reminder")
	require.NoError(t, err)
	require.Contains(t, resp.BotMessage.Text, "name of the medicine")

	resp, err = svc.Submit(ctx, "Aspirin")
	require.NoError(t, err)
	require.Contains(t, resp.BotMessage.Text, "Got it: Aspirin")

	resp, err = svc.Submit(ctx, "08:30")
	require.NoError(t, err)
	require.Contains(t, resp.BotMessage.Text, "**Aspirin**")
	assert.Equal(t, []string{"Show Reminders", "Symptoms"}, resp.Suggestions)

	reminders := reminderSvc.List()
	require.Len(t, reminders, 1)
	assert.Equal(t, "Aspirin", reminders[0].MedicineName)
	assert.Equal(t, "08:30", reminders[0].Time)
	assert.False(t, reminders[0].Taken)

	// The flow is idle again: an unrelated input reaches the responder.
	resp, err = svc.Submit(ctx, "fever")
	require.NoError(t, err)
	assert.Contains(t, resp.BotMessage.Text, "Fever is often a sign")
}

func TestFlowCancellationCreatesNothing(t *testing.T) {
	svc, reminderSvc := newConversation(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "Medicine Reminder")
	require.NoError(t, err)
	resp, err := svc.Submit(ctx, "cancel")
	require.NoError(t, err)
	assert.Contains(t, resp.BotMessage.Text, "cancelled")
	assert.Empty(t, reminderSvc.List())
}

func TestShowRemindersWithEmptyStore(t *testing.T) {
	svc, _ := newConversation(t)

	resp, err := svc.Submit(context.Background(), "Show Reminders")
	require.NoError(t, err)
	assert.Contains(t, resp.BotMessage.Text, "no active reminders")
	assert.Equal(t, []string{"Medicine Reminder"}, resp.Suggestions)
}

func TestShowRemindersListsStoredReminders(t *testing.T) {
	svc, reminderSvc := newConversation(t)
	ctx := context.Background()

	_, err := reminderSvc.Create(ctx, "Aspirin", "08:30")
	require.NoError(t, err)
	_, err = reminderSvc.Create(ctx, "Ibuprofen", "20:15")
	require.NoError(t, err)

	resp, err := svc.Submit(ctx, "show reminders")
	require.NoError(t, err)
	assert.Contains(t, resp.BotMessage.Text, "**Aspirin** at **08:30**")
	assert.Contains(t, resp.BotMessage.Text, "**Ibuprofen** at **20:15**")
}

func TestShowRemindersDoesNotStartTheFlow(t *testing.T) {
	svc, reminderSvc := newConversation(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "Show Reminders")
	require.NoError(t, err)

	// If the flow had started, this would be captured as a medicine name.
	resp, err := svc.Submit(ctx, "fever")
	require.NoError(t, err)
	assert.Contains(t, resp.BotMessage.Text, "Fever is often a sign")
	assert.Empty(t, reminderSvc.List())
}

func TestNotifyAppendsBotMessage(t *testing.T) {
	svc, _ := newConversation(t)
	before := len(svc.Transcript())

	svc.Notify("⏰ Reminder: It's time to take your medicine: **Aspirin**.")

	transcript := svc.Transcript()
	require.Len(t, transcript, before+1)
	last := transcript[len(transcript)-1]
	assert.Equal(t, models.RoleBot, last.Role)
	assert.Contains(t, last.Text, "**Aspirin**")
}

func TestSubmitHonorsContextCancellationDuringReplyDelay(t *testing.T) {
	reminderSvc := services.NewReminderService(context.Background(), memory.NewStore())
	svc := services.NewConversationService(reminderSvc, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Submit(ctx, "hello")
	require.ErrorIs(t, err, context.Canceled)
}
