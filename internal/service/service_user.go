// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/internal/validators"
	"github.com/MKhiriev/course-api/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	idGenerator    IDGenerator
	passwordCost   int
	now            func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a UserService. Passwords are hashed with the
// given bcrypt cost.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, idGenerator IDGenerator, passwordCost int, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		idGenerator:    idGenerator,
		passwordCost:   passwordCost,
		now:            time.Now,
		logger:         logger,
	}
}

// ListUsers returns every registered user.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// RegisterUser validates the payload, hashes the password and stores the user.
//
// Returns a *validators.ValidationError listing every invalid field, a
// *store.ConstraintViolationError for a duplicate email, or any other
// wrapped failure.
func (s *userService) RegisterUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(*payload.Password, s.passwordCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	now := s.now().UTC()
	user := models.User{
		UserID:       s.idGenerator.Generate(),
		FirstName:    *payload.FirstName,
		LastName:     *payload.LastName,
		EmailAddress: *payload.EmailAddress,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	registeredUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.EmailAddress).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}
