package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"babylog/internal/config"
	"babylog/internal/database"
	"babylog/internal/handlers"
	"babylog/internal/i18n"
	"babylog/internal/models"
	"babylog/internal/repository"
	"babylog/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	stateRepo := repository.NewStateRepository(db)
	profileRepo := repository.NewProfileRepository(stateRepo)
	eventRepo := repository.NewEventRepository(stateRepo)
	growthRepo := repository.NewGrowthRepository(stateRepo)
	prefsRepo := repository.NewPrefsRepository(stateRepo)

	// Initialize services
	translator := i18n.New(models.Language(cfg.DefaultLanguage))
	appState := service.NewAppState(profileRepo, eventRepo, growthRepo, prefsRepo, translator)
	backupService := service.NewBackupService(stateRepo, profileRepo, eventRepo, growthRepo, prefsRepo)

	appState.Load()

	// Initialize handlers
	profileHandler := handlers.NewProfileHandler(appState, translator)
	eventHandler := handlers.NewEventHandler(appState, translator)
	growthHandler := handlers.NewGrowthHandler(appState)
	prefsHandler := handlers.NewPrefsHandler(appState, prefsRepo)
	statsHandler := handlers.NewStatsHandler(appState, translator, cfg.ChartFontPath)
	backupHandler := handlers.NewBackupHandler(backupService, appState)

	// Setup routes
	mux := http.NewServeMux()

	// Profile
	mux.HandleFunc("GET /api/profile", profileHandler.GetProfile)
	mux.HandleFunc("PUT /api/profile", profileHandler.SaveProfile)

	// Journal
	mux.HandleFunc("GET /api/events", eventHandler.ListEvents)
	mux.HandleFunc("POST /api/events", eventHandler.CreateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", eventHandler.DeleteEvent)

	// Growth
	mux.HandleFunc("GET /api/growth", growthHandler.ListEntries)
	mux.HandleFunc("POST /api/growth", growthHandler.CreateEntry)

	// Preferences and onboarding
	mux.HandleFunc("GET /api/preferences", prefsHandler.GetPreferences)
	mux.HandleFunc("PUT /api/preferences", prefsHandler.UpdatePreferences)
	mux.HandleFunc("POST /api/onboarding/complete", prefsHandler.CompleteOnboarding)

	// Statistics
	mux.HandleFunc("GET /api/dashboard", statsHandler.Dashboard)
	mux.HandleFunc("GET /api/stats/trends", statsHandler.Trends)
	mux.HandleFunc("GET /api/stats/growth", statsHandler.GrowthChartData)
	mux.HandleFunc("GET /api/chart/growth.png", statsHandler.GrowthChartPNG)

	// Backup
	mux.HandleFunc("GET /api/backup/export", backupHandler.Export)
	mux.HandleFunc("POST /api/backup/import", backupHandler.Import)
	mux.HandleFunc("GET /api/backup/exists", backupHandler.HasBackup)
	mux.HandleFunc("POST /api/reset", backupHandler.Reset)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}
