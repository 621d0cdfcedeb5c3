package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ynab-payee-manager/internal/adapter"
	"github.com/MKhiriev/ynab-payee-manager/internal/config"
	"github.com/MKhiriev/ynab-payee-manager/internal/handler"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/server"
	"github.com/MKhiriev/ynab-payee-manager/internal/service"
	"github.com/MKhiriev/ynab-payee-manager/internal/store"
	"github.com/MKhiriev/ynab-payee-manager/internal/tui"
	"github.com/MKhiriev/ynab-payee-manager/internal/utils"
	"github.com/MKhiriev/ynab-payee-manager/internal/workers"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

type App struct {
	cfg       *config.ClientConfig
	storages  *store.ClientStorages
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	runIDs    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewApp opens the cache (running migrations) and builds the services.
// Close must be called when the app is no longer needed.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	budgetAdapter, err := adapter.NewHTTPBudgetAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create budget adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services, err := service.NewClientServices(storages, budgetAdapter, cfg, buildInfo, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return newApp(cfg, storages, services, buildInfo, logger), nil
}

func newApp(cfg *config.ClientConfig, storages *store.ClientStorages, services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		cfg:       cfg,
		storages:  storages,
		services:  services,
		buildInfo: buildInfo,
		runIDs:    utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}

// Run starts the terminal UI with the background sync job running.
// A missing or unreadable token is not fatal: the cached data can still be
// browsed and the next sync reports the problem.
func (a *App) Run(ctx context.Context) error {
	if err := a.loadToken(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("api token is not available")
	}

	a.services.SyncJob.Start(ctx, a.cfg.Workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	return tui.New(a.services, a.buildInfo, a.cfg.Workers.SyncInterval, a.logger).Run(ctx)
}

// Serve runs the browser UI and the background sync worker until ctx is
// cancelled or one of them fails.
func (a *App) Serve(ctx context.Context) error {
	if err := a.loadToken(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("api token is not available")
	}

	handlers, err := handler.NewHandlers(a.services, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	return workers.New(
		srv,
		workers.NewSyncWorker(a.services.SyncJob, a.cfg.Workers.SyncInterval, a.logger),
	).Run(ctx)
}

// Sync runs one refresh of every entity under a fresh run id.
func (a *App) Sync(ctx context.Context, full bool) ([]models.SyncResult, error) {
	if err := a.loadToken(ctx); err != nil {
		return nil, err
	}

	ctx = utils.WithRunID(ctx, a.runIDs.Generate())
	return a.services.SyncService.SyncAll(ctx, full)
}

// Payees returns the cached payees, narrowed by name when name is not empty.
func (a *App) Payees(ctx context.Context, name string) ([]models.Payee, int64, error) {
	payees, knowledge, err := a.services.PayeeService.List(ctx)
	if err != nil || name == "" {
		return payees, knowledge, err
	}

	payees, err = a.services.PayeeService.Search(ctx, name)
	return payees, knowledge, err
}

func (a *App) Transactions(ctx context.Context) ([]models.Transaction, int64, error) {
	return a.services.TransactionService.List(ctx)
}

func (a *App) Budgets(ctx context.Context) ([]models.Budget, error) {
	if err := a.loadToken(ctx); err != nil {
		return nil, err
	}
	return a.services.BudgetService.List(ctx)
}

func (a *App) SetToken(ctx context.Context, token string) error {
	return a.services.TokenService.SaveToken(ctx, token)
}

func (a *App) ClearToken(ctx context.Context) error {
	return a.services.TokenService.ForgetToken(ctx)
}

// loadToken installs the API token. ErrNoToken is passed through so callers
// that need the API report it; everything else is wrapped.
func (a *App) loadToken(ctx context.Context) error {
	err := a.services.TokenService.LoadToken(ctx)
	if err == nil || errors.Is(err, service.ErrNoToken) {
		return err
	}
	return fmt.Errorf("load api token: %w", err)
}
