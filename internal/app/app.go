// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the course API from its layers:
// storages -> services -> handlers -> server.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/course-api/internal/config"
	"github.com/MKhiriev/course-api/internal/handler"
	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/server"
	"github.com/MKhiriev/course-api/internal/service"
	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/models"
)

type App struct {
	storages *store.Storages
	handlers *handler.Handlers
	server   server.Server

	logger *logger.Logger
}

// New connects to the database, applies migrations and builds every layer.
// The caller owns the returned App and must call Run or Close.
func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	services := service.NewServices(storages, cfg.App, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return &App{
		storages: storages,
		handlers: handlers,
		server:   srv,
		logger:   log,
	}, nil
}

// Router returns a fresh router over the App's services without starting
// a listener.
func (a *App) Router() http.Handler {
	return a.handlers.HTTP.Init()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases the database connection.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.logger.Info().Msg("starting course API")
	return a.server.RunServer(ctx)
}

func (a *App) Close() error {
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("error closing storages")
		return err
	}
	return nil
}
