package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"healthbot-backend/internal/models"
	"healthbot-backend/internal/services"
	"healthbot-backend/pkg/httputil"
)

// ConversationHandlers holds the dependencies for conversation handlers.
type ConversationHandlers struct {
	Service *services.ConversationService
}

// NewConversationHandlers creates a new ConversationHandlers.
func NewConversationHandlers(cs *services.ConversationService) *ConversationHandlers {
	return &ConversationHandlers{Service: cs}
}

// HandleGetConversation returns the transcript and the composing indicator.
// GET /v1/conversation
func (h *ConversationHandlers) HandleGetConversation(w http.ResponseWriter, r *http.Request) {
	resp := models.ConversationResponse{
		Messages:  h.Service.Transcript(),
		Composing: h.Service.Composing(),
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// HandleSubmitMessage submits user text (typed input or a clicked
// suggestion chip) to the conversation.
// POST /v1/conversation/messages
func (h *ConversationHandlers) HandleSubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	resp, err := h.Service.Submit(r.Context(), req.Text)
	if err != nil {
		httputil.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to process message: %v", err))
		return
	}
	if resp == nil {
		// Empty or whitespace-only input: transcript unchanged.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}
