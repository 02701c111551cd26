// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Authentication failures. The transport layer answers all three with the
// same 401 response; the distinction only reaches the logs.
var (
	ErrAuthorizationHeaderMissing = errors.New("authorization header missing or malformed")
	ErrUserNotFound               = errors.New("user not found")
	ErrWrongPassword              = errors.New("wrong password")
)

var (
	// ErrNotCourseOwner is returned when the principal tries to change a
	// course owned by somebody else.
	ErrNotCourseOwner = errors.New("principal is not the course owner")

	// ErrCourseNotFound is returned when the addressed course does not exist.
	ErrCourseNotFound = errors.New("course not found")

	// ErrPasswordHashing wraps bcrypt failures during registration.
	ErrPasswordHashing = errors.New("error hashing password")
)
