// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidationFailed matches every *ValidationError via errors.Is.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError lists every rule a payload violated, in field order.
// Messages are part of the HTTP contract and are sent to clients verbatim.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Messages, "; ")
}

// Is reports whether target is [ErrValidationFailed].
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
