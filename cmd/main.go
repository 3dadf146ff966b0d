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

	"github.com/charitha1008/Mini-Project/internal/config"
	"github.com/charitha1008/Mini-Project/internal/database"
	"github.com/charitha1008/Mini-Project/internal/handler"
	"github.com/charitha1008/Mini-Project/internal/service"
	"github.com/charitha1008/Mini-Project/internal/storage"
	"github.com/gorilla/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize storage
	store, err := openStorage(cfg)
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}

	// Initialize services
	var ids service.IDGenerator = service.NewClockIDs(nil)
	if cfg.IDScheme == config.IDSchemeUUID {
		ids = service.UUIDs{}
	}
	studentService := service.NewStudentService(store, service.WithIDGenerator(ids))
	log.Printf("Loaded %d students from %s storage", len(studentService.Load()), cfg.Storage)

	if cfg.SeedSamples {
		if _, err := studentService.SeedSamples(); err != nil {
			log.Fatal("Failed to seed sample students:", err)
		}
	}
	uploadService := service.NewUploadService(studentService)

	// Initialize handlers
	r := handler.NewRouter(
		handler.NewStudentHandler(studentService),
		handler.NewUploadHandler(uploadService),
		handler.NewPageHandler(studentService),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handlers.LoggingHandler(os.Stdout, handlers.CORS(handlers.AllowedOrigins(cfg.CORSOrigins))(r)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Shutdown error:", err)
	}
}

func openStorage(cfg config.Config) (storage.Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return storage.NewMemoryStorage(), nil
	case config.StorageFile:
		return storage.NewFileStorage(cfg.DataDir)
	default:
		db, err := database.InitDB(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewGormStorage(db), nil
	}
}
