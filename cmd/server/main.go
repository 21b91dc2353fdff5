package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/config"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/database"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/handler"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/logger"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/model"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/provider"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/router"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/service"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/store"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/validator"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting CSIR NET Mock Test service")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Optional Redis (paper cache + result queue) ───────────────────
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		var err error
		rdb, err = database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
	} else {
		log.Info().Msg("REDIS_URL not set, running with local paper cache only")
	}

	// ─── Optional PostgreSQL (result archive) ──────────────────────────
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
	} else {
		log.Info().Msg("DATABASE_URL not set, result archiving disabled")
	}

	// ─── Exam content and core services ────────────────────────────────
	examCfg := model.DefaultExamConfig()
	catalog := provider.NewCatalog()
	bank := provider.NewGeneratedBank(catalog, examCfg)
	sessions := store.NewSessionStore()

	paperService := service.NewPaperService(bank, catalog, examCfg, rdb, log)
	sessionService := service.NewSessionService(sessions, catalog, bank, examCfg, rdb, log)
	defer sessionService.Close()

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Catalog: handler.NewCatalogHandler(catalog),
		Session: handler.NewSessionHandler(sessionService, paperService),
		WS:      handler.NewWSHandler(sessionService, log, cfg.AllowedOrigins),
	}

	// ─── Start Result Worker ──────────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	if pool != nil && rdb != nil {
		resultWorker := worker.NewResultWorker(pool, rdb, log)
		go resultWorker.Start(workerCtx)
	}

	// ─── Prewarm Paper Cache ──────────────────────────────────────────
	// Build every catalog paper before accepting traffic so the first
	// candidate does not pay the generation cost.
	if err := paperService.Prewarm(ctx); err != nil {
		log.Warn().Err(err).Msg("Paper cache prewarm failed")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the result worker and let the queue drain.
	workerCancel()
	if pool != nil && rdb != nil {
		time.Sleep(2 * time.Second)
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
