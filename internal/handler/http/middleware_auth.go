// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/utils"
)

// authenticate is an HTTP middleware that enforces HTTP Basic authentication.
//
// It verifies the "Authorization" header via [service.AuthService.Authenticate]
// and, on success, stores a fresh [utils.RequestScope] holding the parsed
// credentials and the authenticated principal in the request context.
//
// Every failure (missing header, unknown email, wrong password) answers
// 401 {"message":"Access Denied"}; the specific reason is only logged.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		authHeader := r.Header.Get("Authorization")

		principal, err := h.services.AuthService.Authenticate(ctx, authHeader)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		scope := &utils.RequestScope{Principal: &principal}
		if creds, ok := utils.ParseBasicAuth(authHeader); ok {
			scope.Credentials = &creds
		}

		logger.FromRequest(r).Debug().Str("user_id", principal.UserID).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithRequestScope(ctx, scope)))
	})
}
