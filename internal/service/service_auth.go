// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/models"
)

// authService is the concrete implementation of AuthService.
// It resolves the Basic credentials of a request against the user directory
// and verifies the password with bcrypt.
type authService struct {
	// userRepository is the data-access layer used to look up users by email.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Authenticate resolves the Authorization header value to a user.
//
// Returns the stored user or:
//   - ErrAuthorizationHeaderMissing if the header is absent or not valid Basic.
//   - ErrUserNotFound if no user has the supplied email address.
//   - ErrWrongPassword if the password does not match the stored hash.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Authenticate(ctx context.Context, authHeader string) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials, ok := utils.ParseBasicAuth(authHeader)
	if !ok {
		return models.User{}, ErrAuthorizationHeaderMissing
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.EmailAddress)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("email", credentials.EmailAddress).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.ComparePassword(credentials.Password, foundUser.PasswordHash) {
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}
