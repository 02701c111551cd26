// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/migrations"
)

// DB wraps a *sql.DB together with everything that differs between SQL
// dialects: the squirrel placeholder format, the migration set and the
// driver error classification.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Ping reports whether the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

const (
	msgEmailAlreadyExists = "The email you entered already exists"
	msgOwnerDoesNotExist  = "Course owner does not exist"
	msgDuplicateValue     = "The value you entered already exists"
	msgRequiredSuffix     = " is required"
)

// columnLabels turns column names into the labels used in client messages.
var columnLabels = map[string]string{
	"first_name":    "First name",
	"last_name":     "Last name",
	"email_address": "Email address",
	"password_hash": "Password",
	"title":         "Title",
	"description":   "Description",
	"user_id":       "Course owner",
}

// constraintError converts a constraint violation into a
// [*ConstraintViolationError]. It returns nil for any other error.
func (db *DB) constraintError(err error) error {
	if err == nil || db.errorClassificator == nil {
		return nil
	}

	column := db.errorClassificator.Column(err)

	var message string
	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		message = msgDuplicateValue
		if strings.Contains(column, "email_address") {
			message = msgEmailAlreadyExists
		}
	case ForeignKeyViolation:
		message = msgOwnerDoesNotExist
	case NotNullViolation:
		label, ok := columnLabels[column]
		if !ok {
			label = column
		}
		message = label + msgRequiredSuffix
	default:
		return nil
	}

	return &ConstraintViolationError{Messages: []string{message}, Err: err}
}
