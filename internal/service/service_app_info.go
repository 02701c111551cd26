// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/models"
)

// ErrNoDatabase is returned by Ping when the service has no storage to check.
var ErrNoDatabase = errors.New("no database configured")

type appInfoService struct {
	buildInfo models.AppBuildInfo
	pinger    Pinger

	logger *logger.Logger
}

// NewAppInfoService constructs an AppInfoService reporting buildInfo and
// checking liveness through pinger.
func NewAppInfoService(buildInfo models.AppBuildInfo, pinger Pinger, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		pinger:    pinger,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.buildInfo.BuildVersion()
}

// Ping reports whether the database is reachable.
func (s *appInfoService) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return ErrNoDatabase
	}

	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		return err
	}
	return nil
}
