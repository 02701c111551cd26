// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/course-api/internal/config"
	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/internal/validators"
	"github.com/MKhiriev/course-api/models"
)

// Services groups every service consumed by the transport layer.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	CourseService  CourseService
	AppInfoService AppInfoService
}

// NewServices wires all services on top of storages.
func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewPayloadValidator(validators.PasswordPolicy{
		MinLength: cfg.PasswordMinLength,
		MaxLength: cfg.PasswordMaxLength,
	})
	idGenerator := utils.NewUUIDGenerator()

	var pinger Pinger
	if storages.DB != nil {
		pinger = storages.DB
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		UserService:    NewUserService(storages.UserRepository, validator, idGenerator, cfg.PasswordCost, logger),
		CourseService:  NewCourseService(storages.CourseRepository, validator, idGenerator, logger),
		AppInfoService: NewAppInfoService(buildInfo, pinger, logger),
	}
}
