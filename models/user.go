// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that can own courses and authenticate with
// HTTP Basic credentials (email address + password).
// Sensitive and audit fields are never serialized.
type User struct {
	// UserID is the opaque identifier generated on creation (UUIDv7).
	UserID string `json:"id"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`

	// PasswordHash is the bcrypt hash of the user's password. It embeds its
	// own salt and cost and must never leave the server.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
