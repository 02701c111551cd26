// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the transport,
// service and storage layers: the request scope kept in the context, HTTP
// Basic credential parsing, bcrypt password hashing, JSON response writing
// and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/course-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestScopeCtxKey is the key under which the [RequestScope] of a request
// is stored in its context.
var RequestScopeCtxKey = contextKey("requestScope")

// RequestScope holds the request-scoped authentication state.
//
// It is created by the authentication middleware and is never shared
// between requests. Principal is nil until authentication succeeds.
type RequestScope struct {
	// Credentials are the parsed Basic credentials, nil when the request
	// carried no (or a malformed) Authorization header.
	Credentials *models.Credentials

	// Principal is the authenticated user.
	Principal *models.User
}

// WithRequestScope returns a copy of ctx carrying scope.
func WithRequestScope(ctx context.Context, scope *RequestScope) context.Context {
	return context.WithValue(ctx, RequestScopeCtxKey, scope)
}

// GetRequestScope retrieves the [RequestScope] stored in ctx.
// ok is false when no scope was stored or the value has an unexpected type.
func GetRequestScope(ctx context.Context) (*RequestScope, bool) {
	scope, ok := ctx.Value(RequestScopeCtxKey).(*RequestScope)
	if !ok || scope == nil {
		return nil, false
	}
	return scope, true
}

// GetPrincipalFromContext returns the authenticated user of the request.
//
// ok == false means the request was not authenticated (the route is not
// protected or the middleware is misconfigured).
//
// Example usage:
//
//	principal, ok := utils.GetPrincipalFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetPrincipalFromContext(ctx context.Context) (models.User, bool) {
	scope, ok := GetRequestScope(ctx)
	if !ok || scope.Principal == nil {
		return models.User{}, false
	}
	return *scope.Principal, true
}

// WithPrincipal is a shortcut that stores a scope holding only principal.
// It is used by tests and by callers that authenticate outside the HTTP
// middleware.
func WithPrincipal(ctx context.Context, principal models.User) context.Context {
	return WithRequestScope(ctx, &RequestScope{Principal: &principal})
}
