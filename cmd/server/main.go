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

	"notekeeper/config"
	httpdelivery "notekeeper/internal/delivery/http"
	"notekeeper/internal/delivery/http/middleware"
	"notekeeper/internal/domain"
	"notekeeper/internal/repository/jsonfile"
	"notekeeper/internal/repository/memory"
	"notekeeper/internal/repository/postgres"
	"notekeeper/internal/services"
)

// @title Notekeeper API
// @version 1.0
// @description Personal note-taking backend: notebooks, notes, and tags over a single persisted document.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()

	var store domain.DocumentStore
	switch cfg.Storage {
	case config.StorageMemory:
		logger.Info("using in-memory document store")
		store = memory.New()
	case config.StoragePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Error("connect postgres", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		pg := postgres.NewStore(db)
		if err := pg.Init(context.Background()); err != nil {
			logger.Error("init postgres store", "err", err)
			os.Exit(1)
		}
		logger.Info("using postgres document store")
		store = pg
	default:
		logger.Info("using file document store", "path", cfg.DataFile)
		store = jsonfile.New(cfg.DataFile)
	}

	svc := services.New(store, 5*time.Second)

	mux := httpdelivery.NewRouter(
		httpdelivery.NewNotebookController(logger, svc),
		httpdelivery.NewNoteController(logger, svc),
		httpdelivery.NewTagController(logger, svc),
		httpdelivery.NewQueryController(logger, svc),
	)
	handler := middleware.RequestID(
		middleware.Logging(logger,
			middleware.CORS(cfg.CORSAllowedOrigins, mux)))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("server stopped")
}
