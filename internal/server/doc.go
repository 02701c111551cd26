// Package server runs the HTTP transport of the course API.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured shutdown timeout.
package server
