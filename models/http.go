// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserPayload is the request body of POST /users.
//
// Fields are pointers so that a missing field (nil) can be told apart from
// an empty one; each case produces its own validation message.
type UserPayload struct {
	FirstName    *string `json:"firstName"    validate:"required,nonblank"`
	LastName     *string `json:"lastName"     validate:"required,nonblank"`
	EmailAddress *string `json:"emailAddress" validate:"required,nonblank,email"`
	Password     *string `json:"password"     validate:"required,nonblank,password_policy"`
}

// CoursePayload is the request body of POST /courses and PUT /courses/{id}.
// EstimatedTime and MaterialsNeeded are optional and never validated.
type CoursePayload struct {
	Title           *string `json:"title"       validate:"required,nonblank"`
	Description     *string `json:"description" validate:"required,nonblank"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}
