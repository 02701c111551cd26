// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/course-api/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Get("/", h.handle(h.welcome))
	router.Get("/ping", h.handle(h.ping))

	router.Route("/users", func(r chi.Router) {
		r.With(h.authenticate).Get("/", h.handle(h.listUsers))
		r.Post("/", h.handle(h.createUser))
	})

	router.Route("/courses", func(r chi.Router) {
		// routes without authorization
		r.Get("/", h.handle(h.listCourses))
		r.Get("/{id}", h.handle(h.getCourse))

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Post("/", h.handle(h.createCourse))
			r.Put("/{id}", h.handle(h.updateCourse))
			r.Delete("/{id}", h.handle(h.deleteCourse))
		})
	})

	return router
}

// notFound answers unknown routes and unsupported methods alike.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, models.MessageResponse{Message: msgPageNotFound}, http.StatusNotFound)
}
