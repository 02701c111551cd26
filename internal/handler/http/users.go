// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		return err
	}

	h.writeJSON(w, r, users, http.StatusOK)
	return nil
}

// createUser registers a new account. The response carries no body,
// only Location: /.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) error {
	var payload models.UserPayload
	if err := utils.DecodeJSON(r, &payload); err != nil {
		return err
	}

	user, err := h.services.UserService.RegisterUser(r.Context(), payload)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Info().Str("user_id", user.UserID).Msg("user registered")
	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
	return nil
}
