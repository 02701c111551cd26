// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/models"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) error {
	h.writeJSON(w, r, models.MessageResponse{
		Message: msgWelcome,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
	return nil
}

// ping reports database reachability: 200 when the store answers,
// 503 otherwise.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) error {
	if err := h.services.AppInfoService.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		h.writeJSON(w, r, models.MessageResponse{Message: msgServiceUnavailable}, http.StatusServiceUnavailable)
		return nil
	}

	h.writeJSON(w, r, models.MessageResponse{Message: msgPong}, http.StatusOK)
	return nil
}
