package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/osse101/SaleBadge_Go/docs"
	"github.com/osse101/SaleBadge_Go/internal/badge"
	"github.com/osse101/SaleBadge_Go/internal/bootstrap"
	"github.com/osse101/SaleBadge_Go/internal/config"
	"github.com/osse101/SaleBadge_Go/internal/hooks"
	"github.com/osse101/SaleBadge_Go/internal/i18n"
	"github.com/osse101/SaleBadge_Go/internal/nonce"
	"github.com/osse101/SaleBadge_Go/internal/salebadge"
	"github.com/osse101/SaleBadge_Go/internal/server"
	"github.com/osse101/SaleBadge_Go/internal/settings"
)

// @title Sale Badge API
// @version 1.0
// @description Renders the configurable storefront sale badge and manages its settings.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Load reads .env first so validation sees the same variables.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	bootstrap.SetupLogger(cfg)
	for _, w := range warnings {
		slog.Warn("Environment warning", "detail", w)
	}

	ctx := context.Background()

	store, err := bootstrap.InitializeStore(ctx, cfg, prometheus.DefaultRegisterer)
	if err != nil {
		slog.Error("Failed to initialize option store", "error", err)
		os.Exit(1)
	}

	repo := settings.NewRepository(store.Options)
	if err := bootstrap.ActivateBadgeDefaults(ctx, repo, cfg.SeedFile); err != nil {
		slog.Error("Failed to activate badge defaults", "error", err)
		os.Exit(1)
	}

	translator, err := i18n.New(cfg.DefaultLanguage)
	if err != nil {
		slog.Error("Failed to load translations", "error", err)
		os.Exit(1)
	}
	slog.Info("Translations loaded", "default", translator.Default().String(), "languages", translator.Languages())

	nonces, err := nonce.NewManager(cfg.NonceSecret, cfg.NonceLifetime)
	if err != nil {
		slog.Error("Failed to create nonce manager", "error", err)
		os.Exit(1)
	}

	svc := salebadge.NewService(repo, badge.NewRenderer(translator.DefaultLabel()))
	registry := hooks.NewMemoryRegistry()
	salebadge.Register(ctx, registry, svc)

	srv := server.NewServer(
		server.Options{
			Port:           cfg.Port,
			APIKey:         cfg.APIKey,
			AdminUser:      cfg.AdminUser,
			TrustedProxies: cfg.TrustedProxies,
		},
		server.Dependencies{
			DBPool:     store.Pool(),
			Service:    svc,
			Registry:   registry,
			Nonces:     nonces,
			Translator: translator,
		},
	)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: store.Pool(),
		Cache:  store.Cache,
	})
}
