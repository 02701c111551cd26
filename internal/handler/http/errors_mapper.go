// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/service"
	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/internal/validators"
	"github.com/MKhiriev/course-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrAuthorizationHeaderMissing: http.StatusUnauthorized,
	service.ErrUserNotFound:               http.StatusUnauthorized,
	service.ErrWrongPassword:              http.StatusUnauthorized,
	errPrincipalMissing:                   http.StatusUnauthorized,

	service.ErrNotCourseOwner: http.StatusForbidden,

	service.ErrCourseNotFound: http.StatusNotFound,
	store.ErrCourseNotFound:   http.StatusNotFound,

	utils.ErrInvalidJSON: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var validationErr *validators.ValidationError
	var constraintErr *store.ConstraintViolationError
	if errors.As(err, &validationErr) || errors.As(err, &constraintErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages returns the client-facing list for 400 responses.
func errorMessages(err error) []string {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Messages
	}

	var constraintErr *store.ConstraintViolationError
	if errors.As(err, &constraintErr) {
		return constraintErr.Messages
	}

	return []string{msgInvalidJSON}
}

// writeError is the single place where handler errors become responses.
// Details of 401 and 500 failures are logged and never sent to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	switch status {
	case http.StatusBadRequest:
		log.Debug().Err(err).Msg("bad request")
		h.writeJSON(w, r, models.ErrorsResponse{Errors: errorMessages(err)}, status)
	case http.StatusUnauthorized:
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("access denied")
		h.writeJSON(w, r, models.MessageResponse{Message: msgAccessDenied}, status)
	case http.StatusForbidden:
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("forbidden")
		w.WriteHeader(status)
	case http.StatusNotFound:
		log.Debug().Err(err).Msg("not found")
		h.writeJSON(w, r, models.MessageResponse{Message: msgPageNotFound}, status)
	default:
		log.Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("unexpected error")
		h.writeJSON(w, r, models.MessageResponse{Message: msgInternalServerError}, http.StatusInternalServerError)
	}
}

// logWriteError records a failure to write a response body.
func logWriteError(r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("error writing response")
}
