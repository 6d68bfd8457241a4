package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"healthbot-backend/internal/handlers"
)

// RouterDependencies holds all the dependencies required by the router
// setup, primarily handlers.
type RouterDependencies struct {
	ConversationHandler *handlers.ConversationHandlers
	ReminderHandler     *handlers.ReminderHandlers
}

// NewRouter creates and configures the main Chi router for the application.
func NewRouter(deps RouterDependencies) *chi.Mux {
	r := chi.NewRouter()

	// --- Base Middleware Stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// --- CORS Configuration ---
	// Adjust AllowedOrigins for your frontend deployment(s)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/v1", func(r chi.Router) {
		if deps.ConversationHandler == nil {
			panic("ConversationHandler dependency is nil in router setup")
		}
		r.Route("/conversation", func(r chi.Router) {
			r.Get("/", deps.ConversationHandler.HandleGetConversation)
			r.Post("/messages", deps.ConversationHandler.HandleSubmitMessage)
		})

		if deps.ReminderHandler == nil {
			panic("ReminderHandler dependency is nil in router setup")
		}
		r.Route("/reminders", func(r chi.Router) {
			r.Get("/", deps.ReminderHandler.HandleListReminders)
			r.Post("/", deps.ReminderHandler.HandleCreateReminder)
			r.Delete("/", deps.ReminderHandler.HandleClearReminders)
			r.Patch("/{reminderID}/taken", deps.ReminderHandler.HandleToggleTaken)
			r.Delete("/{reminderID}", deps.ReminderHandler.HandleDeleteReminder)
		})
	})

	return r
}
