package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"logixy_crm/internal/handlers"
	"logixy_crm/internal/logger"
	"logixy_crm/internal/models"
	"logixy_crm/internal/rates"
	"logixy_crm/internal/repository"
	"logixy_crm/internal/seed"
	"logixy_crm/internal/server"
	"logixy_crm/internal/service"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and dashboard stream",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	conn, repos, err := openRepositories()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Seed.OnStart {
		counts, loaded, err := seed.LoadIfEmpty(ctx, repos.Clients, repos.Quotations)
		if err != nil {
			return eris.Wrap(err, "seed demo data")
		}
		if loaded {
			log.Infow("demo data loaded", "clients", counts.Clients, "quotations", counts.Quotations)
		}
	}

	services, err := buildServices(repos, log)
	if err != nil {
		return err
	}

	apiHandler := handlers.NewHandler(services, log,
		handlers.WithRateLimit(cfg.Rates.LimitPerSecond, cfg.Rates.Burst),
		handlers.WithPushInterval(cfg.Dashboard.PushInterval),
	)

	srv := &server.Server{}
	errCh := make(chan error, 1)
	go func() {
		log.Infow("http server starting", "port", cfg.Port, "rates_provider", cfg.Rates.Provider)
		errCh <- srv.Run(cfg.Port, apiHandler.InitRoutes())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return eris.Wrap(err, "http server")
		}
		return nil
	case <-ctx.Done():
	}

	log.Infow("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "server forced to shutdown")
	}
	return nil
}

// buildServices wires the rate engine and the service layer from cfg.
func buildServices(repos *repository.Repository, log *logger.Logger) (*service.Service, error) {
	provider, err := rates.NewProvider(cfg.Rates.ProviderConfig(), repos.Quotations)
	if err != nil {
		return nil, eris.Wrap(err, "rates provider")
	}
	clientLog := log.Component("clients")
	return service.NewService(repos, service.Deps{
		Engine:     rates.NewEngine(provider, cfg.Rates.Window),
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		OnClientOpened: func(c models.Client) {
			clientLog.Infow("client_opened", "id", c.ID, "code", c.Code, "name", c.Name)
		},
	}), nil
}
