package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "promo-auction/internal/adapter/http"
	"promo-auction/internal/adapter/kafka"
	"promo-auction/internal/adapter/lease"
	"promo-auction/internal/adapter/memory"
	"promo-auction/internal/adapter/payment"
	"promo-auction/internal/adapter/postgres"
	"promo-auction/internal/adapter/usecase"
	"promo-auction/internal/config"
	"promo-auction/internal/core/auction"
	"promo-auction/internal/core/port"
	"promo-auction/internal/core/quality"
	"promo-auction/internal/db"
)

// storage groups the repository ports so both backends wire the same way.
type storage struct {
	campaigns port.CampaignRepository
	bids      port.BidRepository
	listings  port.ListingReader
}

// main is the entry point of the auction engine. It loads configuration,
// optionally runs database migrations, wires the repositories, the segment
// locks, the event publisher and the use case, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var (
		store   storage
		closers []io.Closer
	)
	switch cfg.Storage {
	case "memory":
		mem := memory.NewStore()
		store = storage{campaigns: mem, bids: mem, listings: mem}
		logger.Warn("using in-memory storage, data is lost on exit")
	default:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return
			}
			logger.Info("demo data seeded")
		}
		store = storage{
			campaigns: postgres.NewCampaignRepository(pool),
			bids:      postgres.NewBidRepository(pool),
			listings:  postgres.NewListingReader(pool),
		}
	}

	// In-process locks order waiters fairly; the Redis lease extends
	// exclusion to other replicas.
	var locker auction.Locker = auction.NewLocks()
	if cfg.Redis.Enabled() {
		client, err := lease.Connect(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		closers = append(closers, client)
		locker = auction.Chain(locker, lease.NewSegmentLease(client, cfg.Redis.LockTTL, cfg.Redis.RetryInterval, logger))
		logger.Info("distributed segment lease enabled")
	}

	var publisher port.EventPublisher
	if cfg.Kafka.Enabled() {
		p, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logger.Error("kafka publisher error", slog.Any("error", err))
			return
		}
		closers = append(closers, p)
		publisher = p
	}
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				logger.Warn("close error", slog.Any("error", err))
			}
		}
	}()

	resolver := auction.NewResolver(
		store.campaigns,
		store.bids,
		store.listings,
		quality.NewEvaluator(nil, cfg.Auction.MinDescriptionLength),
		auction.Options{
			Pricing: auction.Pricing{
				Increment:   cfg.Auction.BidIncrement,
				CapAtOwnBid: cfg.Auction.CapAtOwnBid,
			},
			ByLocation: cfg.Auction.SegmentByLocation,
			Locker:     locker,
			Publisher:  publisher,
			Logger:     logger,
		},
	)
	svc := usecase.NewCampaignUseCase(
		store.campaigns,
		store.bids,
		payment.NewClient(cfg.Payment.URL, &http.Client{Timeout: cfg.Payment.Timeout}),
		resolver,
		usecase.Settings{
			QuickBoostBudget:   cfg.Auction.QuickBoostBudget,
			MaxQuickBoostHours: cfg.Auction.MaxQuickBoostHours,
			PaymentTimeout:     cfg.Payment.Timeout,
			ConversionValue:    cfg.Auction.ConversionValue,
		},
		logger,
	)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
