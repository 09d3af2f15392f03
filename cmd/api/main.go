// Package main is the entry point for the finance reports API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/reports-api/config"
	"github.com/finance-tracker/reports-api/internal/infra/db"
	"github.com/finance-tracker/reports-api/internal/infra/dependency"
	"github.com/finance-tracker/reports-api/internal/integration/messaging"
	"github.com/finance-tracker/reports-api/internal/integration/persistence/model"
)

const (
	shutdownTimeout    = 10 * time.Second
	tokenPurgeInterval = time.Hour
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	})))

	if err := run(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exited properly")
}

func run(cfg *config.Config) error {
	slog.Info("Starting finance reports API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"db_driver", cfg.Database.Driver,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(model.AllModels()...); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	slog.Info("Database migrations completed")

	infra := dependency.Infra{Database: database}

	// Redis and the broker are optional; the API runs without them.
	if cfg.Redis.Enabled {
		client, err := db.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			slog.Warn("Report cache disabled", "error", err)
		} else {
			infra.Redis = client
			defer client.Close()
		}
	}

	if cfg.AMQP.Enabled {
		events, err := messaging.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			slog.Warn("Ledger events disabled", "error", err)
		} else {
			infra.Events = events
			defer events.Close()
		}
	}

	injector, err := dependency.NewInjector(cfg, infra)
	if err != nil {
		return err
	}

	engine := injector.Router.Setup(cfg.Server.Environment)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		injector.RateLimiter.RunSweeper(gctx)
		return nil
	})

	g.Go(func() error {
		injector.Tokens.RunPurger(gctx, tokenPurgeInterval)
		return nil
	})

	if cfg.Email.WorkerEnabled {
		g.Go(func() error {
			injector.EmailWorker.Start(gctx)
			return nil
		})
	}

	if infra.Events != nil && injector.Invalidator != nil {
		g.Go(func() error {
			err := infra.Events.Consume(gctx, injector.Invalidator.Publish)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			// Losing the consumer leaves cached reports stale but the API usable.
			slog.Error("Ledger event consumer stopped", "error", err)
			return nil
		})
	}

	return g.Wait()
}
