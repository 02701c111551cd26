// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a user lookup produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrCourseNotFound is returned when a course lookup, update or delete
	// targets a course_id that does not exist.
	ErrCourseNotFound = errors.New("course was not found")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// ConstraintViolationError is returned when a write is rejected by a schema
// constraint (unique, not-null or foreign key). Messages are client-facing.
type ConstraintViolationError struct {
	Messages []string
	Err      error
}

func (e *ConstraintViolationError) Error() string {
	return "constraint violation: " + strings.Join(e.Messages, "; ")
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}
