// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ews-sync/internal/adapter"
	"github.com/MKhiriev/go-ews-sync/internal/config"
	"github.com/MKhiriev/go-ews-sync/internal/ews"
	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/service"
	"github.com/MKhiriev/go-ews-sync/internal/store"
	"github.com/MKhiriev/go-ews-sync/internal/utils"
	"github.com/MKhiriev/go-ews-sync/internal/workers"
	"github.com/MKhiriev/go-ews-sync/models"
)

// syncPagesPerRound bounds how many item sync pages one engine call keeps in
// memory before the service persists the intermediate state.
const syncPagesPerRound = 20

// App owns one mailbox: the engine, its sync-state storage and the services
// built over both.
type App struct {
	Engine   *ews.Client
	Services *service.Services
	Workers  *workers.Workers

	storages *store.Storages
	logger   *logger.Logger
}

// NewApp wires the engine, storage and services described by cfg. Server
// versions persisted by a previous run are restored into the engine's
// registry before the first request.
func NewApp(ctx context.Context, cfg *config.ClientConfig, info models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	registry := ews.NewVersionRegistry()
	transport := adapter.NewHTTPTransport(cfg.EWS, logger)

	initial := credentialsFromConfig(cfg.EWS)
	opts := []ews.Option{
		ews.WithLogger(logger),
		ews.WithVersionRegistry(registry),
		ews.WithMaxThrottleRetries(cfg.EWS.MaxThrottleRetries),
		ews.WithRequestIDGenerator(utils.NewUUIDGenerator()),
		ews.WithMaxSyncPages(syncPagesPerRound),
		ews.WithCredentialRefresher(newCredentialReloader(cfg.ConfigFilePath, initial).refresh),
	}
	if cfg.EWS.RetryBusyStatus {
		opts = append(opts, ews.WithBusyStatusRetry())
	}

	engine, err := ews.NewClient(cfg.EWS.Endpoint, initial, transport, opts...)
	if err != nil {
		return nil, fmt.Errorf("create ews client: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	services, err := service.NewServices(engine, registry, storages, cfg.Workers.Folders, info, logger)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create services: %w", err), storages.Close())
	}

	if err = services.Versions.Restore(ctx); err != nil {
		logger.Warn().Err(err).Str("func", "client.NewApp").Msg("could not restore server versions")
	}

	return &App{
		Engine:   engine,
		Services: services,
		Workers:  workers.NewWorkers(workers.NewSyncWorker(services.SyncJob, cfg.Workers.SyncInterval)),
		storages: storages,
		logger:   logger,
	}, nil
}

// Run starts the background workers and blocks until ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.Workers.Start(ctx)
	a.logger.Info().Str("endpoint", a.Engine.Endpoint()).Msg("background sync started")

	<-ctx.Done()

	a.Workers.Stop()
	a.logger.Info().Msg("background sync stopped")
	return nil
}

// ObserveSync implements Client.
func (a *App) ObserveSync(fn service.SyncObserver) {
	a.Services.SyncJob.Observe(fn)
}

// Close persists the version cache and releases the storage.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if err := a.Services.Versions.Persist(ctx); err != nil {
		errs = append(errs, fmt.Errorf("persist server versions: %w", err))
	}
	if err := a.storages.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storages: %w", err))
	}
	return errors.Join(errs...)
}

// credentialsFromConfig prefers a bearer token over basic auth.
func credentialsFromConfig(cfg config.ClientEWS) ews.Credentials {
	if cfg.Token != "" {
		return ews.OAuth2Credentials{AccessToken: cfg.Token}
	}
	return ews.BasicCredentials{Username: cfg.Username, Password: cfg.Password}
}
