// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/service"
	"github.com/MKhiriev/course-api/internal/utils"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

// appHandler is a request handler that reports failures by returning them.
type appHandler func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to an http.HandlerFunc, answering any returned error via
// [Handler.writeError].
func (h *Handler) handle(fn appHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

// writeJSON writes data with statusCode. Write failures are only logged:
// the status line is already on the wire.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logWriteError(r, err)
	}
}
