package main

import (
	"alcyxob/gym-tracker/internal/api"
	"alcyxob/gym-tracker/internal/config"
	"alcyxob/gym-tracker/internal/repository/mongo"
	"alcyxob/gym-tracker/internal/service"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Gym Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureWeightIndexes(ctx, appDB.Collection("weights"))
		mongo.EnsureScheduledWorkoutIndexes(ctx, appDB.Collection("scheduled_workouts"))
		mongo.EnsurePersonalBestIndexes(ctx, appDB.Collection("personal_bests"))
		mongo.EnsureRestTimerIndexes(ctx, appDB.Collection("rest_timers"))
		mongo.EnsureJournalIndexes(ctx, appDB.Collection("journal_entries"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	profileRepo := mongo.NewMongoProfileRepository(appDB)
	weightRepo := mongo.NewMongoWeightRepository(appDB)
	scheduledRepo := mongo.NewMongoScheduledWorkoutRepository(appDB)
	personalBestRepo := mongo.NewMongoPersonalBestRepository(appDB)
	restTimerRepo := mongo.NewMongoRestTimerRepository(appDB)
	journalRepo := mongo.NewMongoJournalRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	profileService := service.NewProfileService(profileRepo, cfg.Profile.MaxRetries)
	weightService := service.NewWeightService(weightRepo)
	scheduledService := service.NewScheduledWorkoutService(scheduledRepo)
	personalBestService := service.NewPersonalBestService(personalBestRepo)
	restTimerService := service.NewRestTimerService(restTimerRepo)
	journalService := service.NewJournalService(journalRepo)
	statsService := service.NewStatsService(profileService, weightService, scheduledService)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, profileService, weightService, scheduledService, personalBestService, restTimerService, journalService, statsService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
