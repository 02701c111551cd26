// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/course-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
//
// Lookups that match nothing return [ErrUserNotFound]. Writes that break a
// schema constraint return a [*ConstraintViolationError].
type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// CourseRepository persists and looks up courses.
//
// Reads of a single course always embed the owner. Lookups and mutations of a
// course that does not exist return [ErrCourseNotFound].
type CourseRepository interface {
	FindCourseByID(ctx context.Context, courseID string) (models.Course, error)
	ListCourses(ctx context.Context, withOwner bool) ([]models.Course, error)
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	UpdateCourse(ctx context.Context, course models.Course) (models.Course, error)
	DeleteCourse(ctx context.Context, courseID string) error
}

// ErrorClassificator maps driver specific errors to an [ErrorClassification]
// and extracts the offending column or constraint name, if any.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	Column(err error) string
}
