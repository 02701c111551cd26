// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-api/internal/config"
	"github.com/MKhiriev/course-api/internal/logger"
)

// Storages groups every repository backed by one database connection.
type Storages struct {
	UserRepository   UserRepository
	CourseRepository CourseRepository

	// DB is exposed for health checks and for closing the pool on shutdown.
	DB *DB
}

// Connect opens the database selected by cfg.Driver.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// NewStorages connects to the configured database, applies pending
// migrations and builds the repositories on top of the connection.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}
	log.Info().Str("func", "NewStorages").Str("driver", cfg.Driver).Msg("migrations applied")

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		CourseRepository: NewCourseRepository(db, log),
		DB:               db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
