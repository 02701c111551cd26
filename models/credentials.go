// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the identifier/secret pair carried by an HTTP Basic
// "Authorization" header. It lives only for the duration of a request.
type Credentials struct {
	// EmailAddress identifies the user (the Basic auth user-id part).
	EmailAddress string

	// Password is the plaintext secret.
	Password string
}
