package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthbot-backend/internal/api"
	"healthbot-backend/internal/config"
	"healthbot-backend/internal/handlers"
	"healthbot-backend/internal/scheduler"
	"healthbot-backend/internal/services"
	"healthbot-backend/internal/store/sqlite"
)

func main() {
	log.Println("Starting HealthBot Backend...")

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	// 2. Initialize Durable Store
	st, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to open store at %s: %v", cfg.DatabasePath, err)
	}
	defer st.Close()
	log.Println("Sqlite store initialized.")

	// Session context: the scheduler lives exactly as long as this.
	sessionCtx, sessionCancel := context.WithCancel(context.Background())
	defer sessionCancel()

	// 3. Initialize Services
	reminderService := services.NewReminderService(sessionCtx, st)
	log.Println("ReminderService initialized.")
	conversationService := services.NewConversationService(reminderService, cfg.ReplyDelay)
	log.Println("ConversationService initialized.")

	// 4. Start the Reminder Scheduler
	sched := scheduler.New(reminderService, conversationService, cfg.TickInterval)
	go sched.Run(sessionCtx)

	// 5. Initialize Handlers
	conversationHandler := handlers.NewConversationHandlers(conversationService)
	reminderHandler := handlers.NewReminderHandlers(reminderService)
	log.Println("Handlers initialized.")

	// 6. Setup Router & Inject Dependencies
	router := api.NewRouter(api.RouterDependencies{
		ConversationHandler: conversationHandler,
		ReminderHandler:     reminderHandler,
	})
	log.Println("HTTP router configured.")

	// 7. Configure and Start HTTP Server
	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
		// Production hardening: Set timeouts to avoid Slowloris attacks
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Channel to listen for OS signals for graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	// Run server in a goroutine so it doesn't block
	go func() {
		log.Printf("Server starting and listening on port %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: Could not listen on %s: %v\n", cfg.HTTPPort, err)
		}
		log.Println("Server listener routine stopped.")
	}()

	// Wait for interrupt signal
	<-stopChan
	log.Println("Shutdown signal received, initiating graceful shutdown...")

	// Tear down the scheduler before the HTTP surface.
	sessionCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("WARN: Server graceful shutdown failed: %v", err)
	}

	log.Println("Server shutdown complete.")
}
