package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/core/services"
	"github.com/SscSPs/household_ledger/internal/handlers"
	"github.com/SscSPs/household_ledger/internal/importing/csvsource"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newServeCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
}

func runServe(ctx context.Context, flags *rootFlags) error {
	logger := newLogger()

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open store", slog.String("error", err.Error()))
		return err
	}
	defer closeStore(store)

	svc := services.NewServiceContainer(store, services.WithDefaultBankAccount(cfg.DefaultBankAccount))

	if cfg.EnableDBCheck {
		if err := checkLedger(ctx, svc); err != nil {
			logger.Error("Ledger check failed", slog.String("error", err.Error()))
			return err
		}
	}

	profiles, err := csvsource.NewRegistry(cfg.BankProfileDir)
	if err != nil {
		return err
	}

	router, err := newRouter(cfg, logger, svc, profiles)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("driver", cfg.DBDriver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
			return err
		}
	}
	return nil
}

func newRouter(cfg *config.Config, logger *slog.Logger, svc *portssvc.ServiceContainer, profiles *csvsource.Registry) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handlers.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg := cors.Config{
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "Retry-After"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}
		if slices.Contains(cfg.CORSAllowedOrigins, "*") {
			corsCfg.AllowAllOrigins = true
			corsCfg.AllowCredentials = false
		} else {
			corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
		}
		r.Use(cors.New(corsCfg))
	}

	limiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}
	r.Use(middleware.RateLimit(limiter))

	handlers.RegisterRoutes(r, cfg, svc, profiles)
	return r, nil
}

// checkLedger verifies that every account balance adds up to zero, which
// holds for any ledger where each entry balanced when it was posted.
func checkLedger(ctx context.Context, svc *portssvc.ServiceContainer) error {
	balances, err := svc.Balance.AccountBalances(ctx)
	if err != nil {
		return err
	}
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.Balance)
	}
	if !total.IsZero() {
		return fmt.Errorf("account balances sum to %s instead of zero", total.StringFixed(2))
	}
	slog.Info("Ledger check passed", slog.Int("accounts", len(balances)))
	return nil
}
