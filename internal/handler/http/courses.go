// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/models"
)

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) error {
	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		return err
	}

	h.writeJSON(w, r, courses, http.StatusOK)
	return nil
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) error {
	course, err := h.services.CourseService.GetCourse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	h.writeJSON(w, r, course, http.StatusOK)
	return nil
}

// createCourse stores a course owned by the principal and points
// Location at it.
func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		return errPrincipalMissing
	}

	var payload models.CoursePayload
	if err := utils.DecodeJSON(r, &payload); err != nil {
		return err
	}

	course, err := h.services.CourseService.CreateCourse(ctx, principal, payload)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Info().Str("course_id", course.CourseID).Msg("course created")
	w.Header().Set("Location", "/courses/"+course.CourseID)
	w.WriteHeader(http.StatusCreated)
	return nil
}

func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		return errPrincipalMissing
	}

	var payload models.CoursePayload
	if err := utils.DecodeJSON(r, &payload); err != nil {
		return err
	}

	if _, err := h.services.CourseService.UpdateCourse(ctx, principal, chi.URLParam(r, "id"), payload); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		return errPrincipalMissing
	}

	if err := h.services.CourseService.DeleteCourse(ctx, principal, chi.URLParam(r, "id")); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
