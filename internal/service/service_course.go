// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/internal/validators"
	"github.com/MKhiriev/course-api/models"
)

type courseService struct {
	courseRepository store.CourseRepository
	validator        validators.Validator
	idGenerator      IDGenerator
	now              func() time.Time

	logger *logger.Logger
}

// NewCourseService constructs a CourseService.
func NewCourseService(courseRepository store.CourseRepository, validator validators.Validator, idGenerator IDGenerator, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		validator:        validator,
		idGenerator:      idGenerator,
		now:              time.Now,
		logger:           logger,
	}
}

// AuthorizeCourseOwner returns nil when principal owns course and
// ErrNotCourseOwner otherwise.
func AuthorizeCourseOwner(principal models.User, course models.Course) error {
	if principal.UserID == "" || principal.UserID != course.UserID {
		return ErrNotCourseOwner
	}
	return nil
}

// ListCourses returns all courses with their owners.
func (s *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepository.ListCourses(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	return courses, nil
}

// GetCourse returns the course with its owner or ErrCourseNotFound.
func (s *courseService) GetCourse(ctx context.Context, courseID string) (models.Course, error) {
	course, err := s.courseRepository.FindCourseByID(ctx, courseID)
	if errors.Is(err, store.ErrCourseNotFound) {
		return models.Course{}, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}
	if err != nil {
		return models.Course{}, fmt.Errorf("error finding course: %w", err)
	}

	return course, nil
}

// CreateCourse validates the payload and stores a new course owned by owner.
// Any owner reference in the request body is never consulted.
func (s *courseService) CreateCourse(ctx context.Context, owner models.User, payload models.CoursePayload) (models.Course, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.Course{}, err
	}

	now := s.now().UTC()
	course := models.Course{
		CourseID:        s.idGenerator.Generate(),
		Title:           *payload.Title,
		Description:     *payload.Description,
		EstimatedTime:   payload.EstimatedTime,
		MaterialsNeeded: payload.MaterialsNeeded,
		UserID:          owner.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.courseRepository.CreateCourse(ctx, course)
	if err != nil {
		log.Err(err).Str("user_id", owner.UserID).Msg("course creation ended with error")
		return models.Course{}, fmt.Errorf("course creation ended with error: %w", err)
	}

	log.Info().Str("course_id", created.CourseID).Str("user_id", owner.UserID).Msg("course created")
	return created, nil
}

// UpdateCourse applies payload to the course addressed by courseID.
// Title and description are replaced; optional fields are only replaced when
// present in the payload. The owner never changes.
func (s *courseService) UpdateCourse(ctx context.Context, principal models.User, courseID string, payload models.CoursePayload) (models.Course, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.Course{}, err
	}

	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return models.Course{}, err
	}

	if err := AuthorizeCourseOwner(principal, course); err != nil {
		log.Warn().
			Str("course_id", courseID).
			Str("owner_id", course.UserID).
			Str("principal_id", principal.UserID).
			Msg("course update denied")
		return models.Course{}, err
	}

	course.Title = *payload.Title
	course.Description = *payload.Description
	if payload.EstimatedTime != nil {
		course.EstimatedTime = payload.EstimatedTime
	}
	if payload.MaterialsNeeded != nil {
		course.MaterialsNeeded = payload.MaterialsNeeded
	}
	course.UpdatedAt = s.now().UTC()

	updated, err := s.courseRepository.UpdateCourse(ctx, course)
	if errors.Is(err, store.ErrCourseNotFound) {
		return models.Course{}, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}
	if err != nil {
		log.Err(err).Str("course_id", courseID).Msg("course update ended with error")
		return models.Course{}, fmt.Errorf("course update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteCourse removes the course addressed by courseID when principal owns it.
func (s *courseService) DeleteCourse(ctx context.Context, principal models.User, courseID string) error {
	log := logger.FromContext(ctx)

	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return err
	}

	if err := AuthorizeCourseOwner(principal, course); err != nil {
		log.Warn().
			Str("course_id", courseID).
			Str("owner_id", course.UserID).
			Str("principal_id", principal.UserID).
			Msg("course deletion denied")
		return err
	}

	err = s.courseRepository.DeleteCourse(ctx, courseID)
	if errors.Is(err, store.ErrCourseNotFound) {
		return fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}
	if err != nil {
		log.Err(err).Str("course_id", courseID).Msg("course deletion ended with error")
		return fmt.Errorf("course deletion ended with error: %w", err)
	}

	return nil
}
