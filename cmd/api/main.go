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

	"github.com/MrJamesThe3rd/budgetly/internal/budget"
	budgetStore "github.com/MrJamesThe3rd/budgetly/internal/budget/store"
	"github.com/MrJamesThe3rd/budgetly/internal/config"
	"github.com/MrJamesThe3rd/budgetly/internal/database"
	"github.com/MrJamesThe3rd/budgetly/internal/debt"
	debtStore "github.com/MrJamesThe3rd/budgetly/internal/debt/store"
	apiHttp "github.com/MrJamesThe3rd/budgetly/internal/http"
	debtHandler "github.com/MrJamesThe3rd/budgetly/internal/http/debt"
	"github.com/MrJamesThe3rd/budgetly/internal/http/metrics"
	overviewHandler "github.com/MrJamesThe3rd/budgetly/internal/http/overview"
	txHandler "github.com/MrJamesThe3rd/budgetly/internal/http/transaction"
	"github.com/MrJamesThe3rd/budgetly/internal/overview"
	"github.com/MrJamesThe3rd/budgetly/internal/transaction"
	txStore "github.com/MrJamesThe3rd/budgetly/internal/transaction/store"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Error("AUTH_JWT_SECRET must be set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		debtService        = debt.NewService(debtStore.New(db))
		transactionService = transaction.NewService(txStore.New(db), debtService)
		budgetService      = budget.NewService(budgetStore.New(db))
		overviewService    = overview.NewService(transactionService, debtService, budgetService)
	)

	opts := apiHttp.Options{JWTSecret: []byte(cfg.Auth.JWTSecret), AllowedOrigins: cfg.Server.CORSOrigins}

	if cfg.Server.Metrics {
		m, err := metrics.New()
		if err != nil {
			slog.Error("failed to register metrics", "error", err)
			os.Exit(1)
		}

		opts.Metrics = m
	}

	router := apiHttp.New(
		opts,
		overviewHandler.NewHandler(overviewService, budgetService),
		txHandler.NewHandler(transactionService),
		debtHandler.NewHandler(debtService),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
