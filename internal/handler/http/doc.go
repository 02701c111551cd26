// Package http implements the HTTP transport layer of the course API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, panic
// recovery and HTTP Basic authentication are handled in this package before
// requests are delegated to the service layer. Every error a handler returns
// is translated into a status code and body in one place, errors_mapper.go.
package http
