package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guilhermehba/estoque-ferro-velho/internal/config"
	"github.com/guilhermehba/estoque-ferro-velho/internal/infra"
	"github.com/guilhermehba/estoque-ferro-velho/internal/repository"
	"github.com/guilhermehba/estoque-ferro-velho/internal/repository/memory"
	"github.com/guilhermehba/estoque-ferro-velho/internal/router"
	"github.com/guilhermehba/estoque-ferro-velho/internal/service"
	"github.com/guilhermehba/estoque-ferro-velho/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Storage backend is selected once, here. Everything downstream works
	// against the repository interfaces and never knows which one it got.
	var db *gorm.DB
	var repos router.Repos
	switch cfg.StorageMode {
	case "postgres":
		db, err = infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		repos = router.Repos{
			Stock:     repository.NewStockRepository(db),
			Purchases: repository.NewPurchaseRepository(db),
			Sales:     repository.NewSaleRepository(db),
			Users:     repository.NewUserRepository(db),
		}
		log.Info().Msg("storage: postgres")
	case "memory":
		store := memory.NewStore()
		store.Seed()
		repos = router.Repos{
			Stock:     store.Stock(),
			Purchases: store.Purchases(),
			Sales:     store.Sales(),
			Users:     store.Users(),
		}
		log.Info().Msg("storage: in-memory (seeded demo data)")
	default:
		log.Fatal().Str("mode", cfg.StorageMode).Msg("unknown STORAGE_MODE (want postgres or memory)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis backs the async report/email queue. Startup proceeds without it:
	// the sync export endpoint still works, the async one returns 503.
	var rdb *redis.Client
	var dispatcher *worker.Dispatcher
	rdb, err = infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, async report queue disabled")
		rdb = nil
	} else {
		dispatcher = worker.NewDispatcher(rdb)
		mailer := infra.NewMailer(cfg)
		cashflowSvc := service.NewCashflowService(repos.Purchases, repos.Sales)
		handlers := &worker.WorkerHandlers{
			Report: worker.NewReportWorker(cashflowSvc, dispatcher, cfg.PDFStoragePath),
			Email:  worker.NewEmailWorker(mailer),
		}
		worker.StartWorkerPool(ctx, rdb, handlers, cfg.WorkerPoolSize)
	}

	r := router.New(cfg, db, rdb, repos, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("scrapyard backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
