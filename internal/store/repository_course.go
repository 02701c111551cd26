// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/models"
)

// courseRepository is the SQL implementation of [CourseRepository] over the
// "courses" table, joined with "users" when the owner is requested.
type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCourseRepository constructs a [CourseRepository] backed by the provided
// database connection and logger.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner, withOwner bool) (models.Course, error) {
	var course models.Course
	dest := []any{
		&course.CourseID,
		&course.Title,
		&course.Description,
		&course.EstimatedTime,
		&course.MaterialsNeeded,
		&course.UserID,
		&course.CreatedAt,
		&course.UpdatedAt,
	}

	var owner models.User
	if withOwner {
		dest = append(dest,
			&owner.UserID,
			&owner.FirstName,
			&owner.LastName,
			&owner.EmailAddress,
		)
	}

	if err := row.Scan(dest...); err != nil {
		return models.Course{}, err
	}

	if withOwner {
		course.Owner = &owner
	}
	return course, nil
}

// FindCourseByID returns the course with its owner embedded, or
// [ErrCourseNotFound].
func (r *courseRepository) FindCourseByID(ctx context.Context, courseID string) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCourseByIDQuery(r.db.builder, courseID)
	if err != nil {
		return models.Course{}, err
	}

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, args...), true)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Course{}, ErrCourseNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*courseRepository.FindCourseByID").
			Str("course_id", courseID).
			Msg("error finding course")
		return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return course, nil
}

// ListCourses returns every course ordered by creation time, each with its
// owner embedded when withOwner is set.
func (r *courseRepository) ListCourses(ctx context.Context, withOwner bool) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCoursesQuery(r.db.builder, withOwner)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("failed to execute query for listing courses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows, withOwner)
		if err != nil {
			log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("failed to scan course row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

// CreateCourse persists a new course. A missing owner surfaces as a
// [*ConstraintViolationError].
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	query, args, err := buildCreateCourseQuery(r.db.builder, course)
	if err != nil {
		return models.Course{}, err
	}

	if _, err := r.exec(ctx, "*courseRepository.CreateCourse", course.CourseID, query, args); err != nil {
		return models.Course{}, err
	}

	return course, nil
}

// UpdateCourse overwrites the mutable fields of an existing course.
func (r *courseRepository) UpdateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	query, args, err := buildUpdateCourseQuery(r.db.builder, course)
	if err != nil {
		return models.Course{}, err
	}

	affected, err := r.exec(ctx, "*courseRepository.UpdateCourse", course.CourseID, query, args)
	if err != nil {
		return models.Course{}, err
	}
	if affected == 0 {
		return models.Course{}, ErrCourseNotFound
	}

	return course, nil
}

// DeleteCourse removes the course with the given identifier.
func (r *courseRepository) DeleteCourse(ctx context.Context, courseID string) error {
	query, args, err := buildDeleteCourseQuery(r.db.builder, courseID)
	if err != nil {
		return err
	}

	affected, err := r.exec(ctx, "*courseRepository.DeleteCourse", courseID, query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// exec runs a DML statement and returns the number of affected rows.
func (r *courseRepository) exec(ctx context.Context, funcName, courseID, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if cErr := r.db.constraintError(err); cErr != nil {
			log.Debug().Err(err).Str("func", funcName).Str("course_id", courseID).Msg("constraint violation")
			return 0, cErr
		}

		log.Err(err).Str("func", funcName).Str("course_id", courseID).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Str("course_id", courseID).Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
