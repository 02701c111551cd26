// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/course-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func validUser() models.UserPayload {
	return models.UserPayload{
		FirstName:    ptr("Joe"),
		LastName:     ptr("Smith"),
		EmailAddress: ptr("joe@smith.com"),
		Password:     ptr("joepassword"),
	}
}

func validCourse() models.CoursePayload {
	return models.CoursePayload{
		Title:       ptr("Build a Basic Bookcase"),
		Description: ptr("High-end furniture projects are great to dream about."),
	}
}

func messagesOf(t *testing.T, err error) []string {
	t.Helper()
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "expected *ValidationError, got %v", err)
	return vErr.Messages
}

func TestPayloadValidator_UserPayload_TableTest(t *testing.T) {
	v := NewPayloadValidator(PasswordPolicy{})

	tests := []struct {
		name   string
		mutate func(p *models.UserPayload)
		want   []string
	}{
		{
			name:   "valid",
			mutate: func(p *models.UserPayload) {},
		},
		{
			name:   "missing first name",
			mutate: func(p *models.UserPayload) { p.FirstName = nil },
			want:   []string{"First name is required"},
		},
		{
			name:   "empty last name",
			mutate: func(p *models.UserPayload) { p.LastName = ptr("") },
			want:   []string{"Please provide a valid last name"},
		},
		{
			name:   "blank last name",
			mutate: func(p *models.UserPayload) { p.LastName = ptr("   ") },
			want:   []string{"Please provide a valid last name"},
		},
		{
			name:   "missing email",
			mutate: func(p *models.UserPayload) { p.EmailAddress = nil },
			want:   []string{"Email Required"},
		},
		{
			name:   "malformed email",
			mutate: func(p *models.UserPayload) { p.EmailAddress = ptr("joe-at-smith") },
			want:   []string{"Please provide a valid email address"},
		},
		{
			name:   "empty password",
			mutate: func(p *models.UserPayload) { p.Password = ptr("") },
			want:   []string{"Please provide a password"},
		},
		{
			name: "every field missing is reported at once",
			mutate: func(p *models.UserPayload) {
				*p = models.UserPayload{}
			},
			want: []string{
				"First name is required",
				"Last name is required",
				"Email Required",
				"Password Required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validUser()
			tt.mutate(&payload)

			err := v.Validate(context.Background(), payload)

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidationFailed)
			assert.Equal(t, tt.want, messagesOf(t, err))
		})
	}
}

func TestPayloadValidator_PasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   PasswordPolicy
		password string
		want     string
	}{
		{name: "within bounds", policy: PasswordPolicy{MinLength: 8, MaxLength: 20}, password: "joepassword"},
		{name: "too short", policy: PasswordPolicy{MinLength: 8, MaxLength: 20}, password: "short", want: "Password must be between 8 and 20 characters long"},
		{name: "too long", policy: PasswordPolicy{MinLength: 8, MaxLength: 20}, password: strings.Repeat("a", 21), want: "Password must be between 8 and 20 characters long"},
		{name: "min only", policy: PasswordPolicy{MinLength: 8}, password: "short", want: "Password must be at least 8 characters long"},
		{name: "max only", policy: PasswordPolicy{MaxLength: 4}, password: "longer", want: "Password must be at most 4 characters long"},
		{name: "counts characters not bytes", policy: PasswordPolicy{MaxLength: 4}, password: "пароль"[:8]},
		{name: "bcrypt byte limit", policy: PasswordPolicy{}, password: strings.Repeat("a", 73), want: "Password must not exceed 72 bytes"},
		{name: "unbounded", policy: PasswordPolicy{}, password: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewPayloadValidator(tt.policy)
			payload := validUser()
			payload.Password = ptr(tt.password)

			err := v.Validate(context.Background(), &payload)

			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, []string{tt.want}, messagesOf(t, err))
		})
	}
}

func TestPayloadValidator_CoursePayload(t *testing.T) {
	v := NewPayloadValidator(PasswordPolicy{})

	t.Run("valid without optional fields", func(t *testing.T) {
		assert.NoError(t, v.Validate(context.Background(), validCourse()))
	})

	t.Run("optional fields are never validated", func(t *testing.T) {
		payload := validCourse()
		payload.EstimatedTime = ptr("")
		payload.MaterialsNeeded = ptr("   ")
		assert.NoError(t, v.Validate(context.Background(), &payload))
	})

	t.Run("missing title and empty description", func(t *testing.T) {
		payload := validCourse()
		payload.Title = nil
		payload.Description = ptr("")

		err := v.Validate(context.Background(), payload)

		assert.Equal(t, []string{"Title is required", "Please provide a valid description"}, messagesOf(t, err))
	})
}

func TestPayloadValidator_PartialFields(t *testing.T) {
	v := NewPayloadValidator(PasswordPolicy{})

	payload := models.UserPayload{EmailAddress: ptr("not-an-email")}

	err := v.Validate(context.Background(), payload, FieldEmailAddress)
	assert.Equal(t, []string{"Please provide a valid email address"}, messagesOf(t, err))

	err = v.Validate(context.Background(), models.CoursePayload{Title: ptr("t")}, FieldTitle)
	assert.NoError(t, err)
}

func TestPayloadValidator_UnknownField(t *testing.T) {
	v := NewPayloadValidator(PasswordPolicy{})

	err := v.Validate(context.Background(), validCourse(), "Nope")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestPayloadValidator_UnsupportedType(t *testing.T) {
	v := NewPayloadValidator(PasswordPolicy{})

	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.UserPayload)(nil)), ErrUnsupportedType)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Messages: []string{"a", "b"}}

	assert.Equal(t, "validation failed: a; b", err.Error())
	assert.True(t, errors.Is(err, ErrValidationFailed))
}
