// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Course is a unit of study owned by exactly one [User].
// Only the owner may update or delete it; ownership never changes.
type Course struct {
	CourseID    string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// EstimatedTime and MaterialsNeeded are optional free text and are
	// serialized as null when unset.
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`

	// UserID references the owning user.
	UserID string `json:"userId"`

	// Owner is populated by read queries that join the users table.
	Owner *User `json:"user,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}
