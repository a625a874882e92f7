package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"micoach/coaching-app/internal/api"
	"micoach/coaching-app/internal/config"
	"micoach/coaching-app/internal/repository"
	"micoach/coaching-app/internal/repository/file"
	"micoach/coaching-app/internal/repository/mongo"
	"micoach/coaching-app/internal/service"
	"micoach/coaching-app/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting MiCoach coaching server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Persistence Adapter ---
	kv, cleanup, err := newKeyValueStore(cfg)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize storage backend: %v", err)
	}
	defer cleanup()
	stateStore := repository.NewStateStore(kv)
	log.Printf("State storage ready (driver: %s).", cfg.Storage.Driver)

	// --- Snapshot Storage ---
	log.Println("Initializing snapshot storage...")
	snapshotStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(stateStore, cfg.JWT.Secret, cfg.JWT.Expiration)
	coachingService := service.NewCoachingService(stateStore)
	backupService := service.NewBackupService(stateStore, snapshotStorage)

	// Hydrate the in-memory mirror from stored state.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := coachingService.Load(loadCtx); err != nil {
		log.Printf("WARN: Could not load stored coaching state: %v", err)
	}
	loadCancel()

	// --- HTTP ---
	router := gin.Default()

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, coachingService, backupService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// newKeyValueStore builds the configured persistence adapter and a cleanup
// function for its resources.
func newKeyValueStore(cfg config.Config) (repository.KeyValueStore, func(), error) {
	switch cfg.Storage.Driver {
	case "file", "":
		kv, err := file.NewFileKeyValueStore(cfg.Storage.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() {}, nil

	case "mongo":
		client, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongo.DisconnectDB(client); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}
		return mongo.NewMongoKeyValueStore(client.Database(cfg.Database.Name)), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
