// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidJSON is returned by DecodeJSON when the request body is empty or
// is not a valid JSON document for the destination type.
var ErrInvalidJSON = errors.New("invalid JSON was passed")

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the given status code and "Content-Type: application/json".
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "Page not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes the request body into dst.
// Any decoding failure, including an empty body, is reported as [ErrInvalidJSON].
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrInvalidJSON
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
