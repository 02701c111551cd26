// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Client-facing messages of the generic error bodies.
const (
	msgAccessDenied        = "Access Denied"
	msgPageNotFound        = "Page not found"
	msgInternalServerError = "Internal Server Error"
	msgInvalidJSON         = "Invalid JSON was passed"
	msgServiceUnavailable  = "Service Unavailable"
	msgWelcome             = "Welcome to the REST API project!"
	msgPong                = "pong"
)

// errPrincipalMissing is returned by protected handlers reached without an
// authenticated principal, which means the route was wired without the
// authenticate middleware.
var errPrincipalMissing = errors.New("no authenticated principal in request scope")
