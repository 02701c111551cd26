// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by Validate for partial validation.
const (
	FieldFirstName    = "FirstName"
	FieldLastName     = "LastName"
	FieldEmailAddress = "EmailAddress"
	FieldPassword     = "Password"
	FieldTitle        = "Title"
	FieldDescription  = "Description"
)

const (
	tagRequired       = "required"
	tagNonBlank       = "nonblank"
	tagEmail          = "email"
	tagPasswordPolicy = "password_policy"
)

// messages maps a JSON field name and a failed tag to the message sent to
// clients.
var messages = map[string]map[string]string{
	"firstName": {
		tagRequired: "First name is required",
		tagNonBlank: "Please provide a valid first name",
	},
	"lastName": {
		tagRequired: "Last name is required",
		tagNonBlank: "Please provide a valid last name",
	},
	"emailAddress": {
		tagRequired: "Email Required",
		tagNonBlank: "Please provide a valid email address",
		tagEmail:    "Please provide a valid email address",
	},
	"password": {
		tagRequired: "Password Required",
		tagNonBlank: "Please provide a password",
	},
	"title": {
		tagRequired: "Title is required",
		tagNonBlank: "Please provide a valid title",
	},
	"description": {
		tagRequired: "Description is required",
		tagNonBlank: "Please provide a valid description",
	},
}

// PasswordPolicy bounds the length of new passwords in characters.
// A zero bound is not enforced. The bcrypt limit of 72 bytes always applies.
type PasswordPolicy struct {
	MinLength int
	MaxLength int
}

func (p PasswordPolicy) allows(password string) bool {
	if len(password) > utils.MaxPasswordBytes {
		return false
	}
	n := utf8.RuneCountInString(password)
	if p.MinLength > 0 && n < p.MinLength {
		return false
	}
	if p.MaxLength > 0 && n > p.MaxLength {
		return false
	}
	return true
}

func (p PasswordPolicy) message(password string) string {
	switch {
	case len(password) > utils.MaxPasswordBytes:
		return fmt.Sprintf("Password must not exceed %d bytes", utils.MaxPasswordBytes)
	case p.MinLength > 0 && p.MaxLength > 0:
		return fmt.Sprintf("Password must be between %d and %d characters long", p.MinLength, p.MaxLength)
	case p.MinLength > 0:
		return fmt.Sprintf("Password must be at least %d characters long", p.MinLength)
	default:
		return fmt.Sprintf("Password must be at most %d characters long", p.MaxLength)
	}
}

// PayloadValidator validates [models.UserPayload] and [models.CoursePayload]
// using their `validate` struct tags.
type PayloadValidator struct {
	validate *validator.Validate
	policy   PasswordPolicy
}

// NewPayloadValidator builds a validator enforcing the given password policy.
func NewPayloadValidator(policy PasswordPolicy) Validator {
	v := &PayloadValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		policy:   policy,
	}

	// report JSON names so messages can be looked up by the wire name
	v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// both registrations only fail on an empty tag or nil func
	_ = v.validate.RegisterValidation(tagNonBlank, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.validate.RegisterValidation(tagPasswordPolicy, func(fl validator.FieldLevel) bool {
		return v.policy.allows(fl.Field().String())
	})

	return v
}

// Validate checks obj and returns a *ValidationError holding one message per
// invalid field. When fields are given, only those struct fields are checked.
func (v *PayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserPayload:
		return v.validateStruct(ctx, &value, fields...)
	case *models.UserPayload:
		return v.validateStruct(ctx, value, fields...)

	case models.CoursePayload:
		return v.validateStruct(ctx, &value, fields...)
	case *models.CoursePayload:
		return v.validateStruct(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PayloadValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	if reflect.ValueOf(obj).IsNil() {
		return ErrUnsupportedType
	}

	for _, f := range fields {
		if _, ok := reflect.TypeOf(obj).Elem().FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("unexpected validation error: %w", err)
	}

	result := &ValidationError{Messages: make([]string, 0, len(fieldErrors))}
	for _, fe := range fieldErrors {
		result.Messages = append(result.Messages, v.message(fe))
	}

	return result
}

func (v *PayloadValidator) message(fe validator.FieldError) string {
	if fe.Tag() == tagPasswordPolicy {
		password, _ := fe.Value().(string)
		return v.policy.message(password)
	}

	if msg, ok := messages[fe.Field()][fe.Tag()]; ok {
		return msg
	}

	return fmt.Sprintf("%s is invalid", fe.Field())
}
