package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"healthbot-backend/internal/models"
	"healthbot-backend/internal/services"
	"healthbot-backend/internal/store"
	"healthbot-backend/pkg/httputil"
)

// ReminderHandlers holds the dependencies for reminder handlers.
type ReminderHandlers struct {
	Service *services.ReminderService
}

// NewReminderHandlers creates a new ReminderHandlers.
func NewReminderHandlers(rs *services.ReminderService) *ReminderHandlers {
	return &ReminderHandlers{Service: rs}
}

// HandleListReminders lists the reminder collection in insertion order.
// GET /v1/reminders
func (h *ReminderHandlers) HandleListReminders(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, models.ListRemindersResponse{Reminders: h.Service.List()})
}

// HandleCreateReminder creates a reminder directly, bypassing the
// conversational flow (used by the reminder panel).
// POST /v1/reminders
func (h *ReminderHandlers) HandleCreateReminder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	reminder, err := h.Service.Create(r.Context(), req.MedicineName, req.Time)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			httputil.RespondError(w, http.StatusBadRequest, vErr.Message)
		} else {
			httputil.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to create reminder: %v", err))
		}
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, models.ReminderResponse{Reminder: reminder})
}

// HandleToggleTaken flips the taken flag on a reminder.
// PATCH /v1/reminders/{reminderID}/taken
func (h *ReminderHandlers) HandleToggleTaken(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reminderID"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	reminder, err := h.Service.ToggleTaken(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.RespondError(w, http.StatusNotFound, "Reminder not found")
		} else {
			httputil.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to toggle reminder: %v", err))
		}
		return
	}

	httputil.RespondJSON(w, http.StatusOK, models.ReminderResponse{Reminder: reminder})
}

// HandleDeleteReminder removes a reminder. Deleting an absent id is a
// no-op and still returns 204.
// DELETE /v1/reminders/{reminderID}
func (h *ReminderHandlers) HandleDeleteReminder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reminderID"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	h.Service.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// HandleClearReminders removes all reminders (the "Reset App" action).
// DELETE /v1/reminders
func (h *ReminderHandlers) HandleClearReminders(w http.ResponseWriter, r *http.Request) {
	h.Service.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
