// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of informational and not-found responses,
// e.g. {"message":"Page not found"}.
type MessageResponse struct {
	Message string `json:"message"`
	Version string `json:"version,omitempty"`
}

// ErrorsResponse is the body of 400 responses. It lists every violated
// validation or constraint rule so a client can show them all at once.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}
