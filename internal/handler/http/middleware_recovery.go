// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/models"
)

// withRecovery turns a panic in a downstream handler into the generic
// 500 response. [http.ErrAbortHandler] is re-raised so the server can
// abort the connection as usual.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("recovered from panic")

			h.writeJSON(w, r, models.MessageResponse{Message: msgInternalServerError}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
