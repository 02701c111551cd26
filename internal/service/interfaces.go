// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/course-api/models"
)

// AuthService resolves HTTP Basic credentials to a user.
type AuthService interface {
	// Authenticate parses authHeader and verifies the credentials it carries.
	Authenticate(ctx context.Context, authHeader string) (models.User, error)
}

// UserService lists and registers users.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	RegisterUser(ctx context.Context, payload models.UserPayload) (models.User, error)
}

// CourseService implements course reads and the owner-checked mutations.
// Mutations validate the payload first, then load the course, then check
// ownership and only then write.
type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID string) (models.Course, error)
	CreateCourse(ctx context.Context, owner models.User, payload models.CoursePayload) (models.Course, error)
	UpdateCourse(ctx context.Context, principal models.User, courseID string, payload models.CoursePayload) (models.Course, error)
	DeleteCourse(ctx context.Context, principal models.User, courseID string) error
}

// AppInfoService reports build metadata and database reachability.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Ping(ctx context.Context) error
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// Pinger is implemented by storage backends that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}
