// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

// Command api is the entry point for the Yadawity HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire domain services and HTTP handlers.
//  7. Start background sweepers (sessions, auctions).
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yadawity/yadawity/internal/admin"
	"github.com/yadawity/yadawity/internal/api"
	"github.com/yadawity/yadawity/internal/core/artwork"
	"github.com/yadawity/yadawity/internal/core/auction"
	"github.com/yadawity/yadawity/internal/core/cart"
	"github.com/yadawity/yadawity/internal/core/order"
	"github.com/yadawity/yadawity/internal/platform/config"
	"github.com/yadawity/yadawity/internal/platform/constants"
	"github.com/yadawity/yadawity/internal/platform/migration"
	pgstore "github.com/yadawity/yadawity/internal/platform/postgres"
	redisstore "github.com/yadawity/yadawity/internal/platform/redis"
	"github.com/yadawity/yadawity/internal/platform/sec"
	"github.com/yadawity/yadawity/internal/reporting"
	"github.com/yadawity/yadawity/internal/users/account"
	"github.com/yadawity/yadawity/internal/users/auth"
)

// sweepInterval is how often the background janitor prunes expired sessions
// and closes past-deadline auctions.
const sweepInterval = 10 * time.Minute

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Yadawity] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	verifyTokens := sec.NewVerifyTokenService(cfg.VerifyTokenSecret, constants.VerifyTokenIssuer)

	userRepository := auth.NewUserRepository(pool)
	sessionRepository := auth.NewSessionRepository(pool)
	csrfTokenRepository := auth.NewCSRFTokenRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, csrfTokenRepository, verifyTokens)
	authHandler := auth.NewHandler(authService, cfg.CookieSecure)

	accountRepository := account.NewPostgresRepository(pool)
	accountService := account.NewService(accountRepository, log)
	accountHandler := account.NewHandler(accountService)

	artworkRepository := artwork.NewPostgresRepository(pool)
	artworkService := artwork.NewService(artworkRepository, log)
	artworkHandler := artwork.NewHandler(artworkService)

	auctionRepository := auction.NewPostgresRepository(pool)
	auctionService := auction.NewService(auctionRepository, artworkRepository, log)
	auctionHandler := auction.NewHandler(auctionService)

	cartRepository := cart.NewRedisRepository(rdb)
	cartService := cart.NewService(cartRepository, artworkRepository, log)
	cartHandler := cart.NewHandler(cartService)

	orderRepository := order.NewPostgresRepository(pool)
	orderService := order.NewService(orderRepository, cartService, log)
	orderHandler := order.NewHandler(orderService)

	reportingRepository := reporting.NewPostgresRepository(pool)
	reportingService := reporting.NewService(reportingRepository, log)
	reportingHandler := reporting.NewHandler(reportingService)

	adminRepository := admin.NewPostgresRepository(pool)
	adminService := admin.NewService(adminRepository, sessionRepository, log)
	adminHandler := admin.NewHandler(adminService, artworkService, orderService, reportingHandler)

	// ── 8. Background sweepers ────────────────────────────────────────────
	sweeperCtx, sweeperCancel := context.WithCancel(context.Background())
	defer sweeperCancel()
	go runSweeper(sweeperCtx, log, sessionRepository, auctionService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Account:   accountHandler,
		Artwork:   artworkHandler,
		Auction:   auctionHandler,
		Cart:      cartHandler,
		Order:     orderHandler,
		Admin:     adminHandler,
	}

	server := api.NewServer(sweeperCtx, cfg, log, authService, csrfTokenRepository, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// runSweeper periodically prunes long-expired sessions and closes auctions
// whose deadline has passed.
func runSweeper(ctx context.Context, log *slog.Logger, sessions *auth.PostgresSessionRepository, auctions *auction.Service) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Keep expired sessions around for a week of audit trail.
			cutoff := time.Now().Add(-7 * 24 * time.Hour)
			if err := sessions.DeleteExpired(ctx, cutoff); err != nil {
				log.Error("session_sweep_failed", slog.Any("error", err))
			}

			if err := auctions.CloseExpired(ctx); err != nil {
				log.Error("auction_sweep_failed", slog.Any("error", err))
			}
		}
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
