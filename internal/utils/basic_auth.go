// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"strings"

	"github.com/MKhiriev/course-api/models"
)

const basicScheme = "basic "

// ParseBasicAuth parses the value of an "Authorization" header of the form
//
//	Basic base64(emailAddress:password)
//
// The scheme is matched case-insensitively and the decoded value is split at
// the first colon, so passwords may contain colons. Missing or malformed
// headers yield ok == false; the function never fails otherwise.
func ParseBasicAuth(header string) (models.Credentials, bool) {
	if len(header) < len(basicScheme) || !strings.EqualFold(header[:len(basicScheme)], basicScheme) {
		return models.Credentials{}, false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(basicScheme):]))
	if err != nil {
		return models.Credentials{}, false
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok || email == "" {
		return models.Credentials{}, false
	}

	return models.Credentials{EmailAddress: email, Password: password}, true
}

// BasicAuthHeader builds an "Authorization" header value for creds.
func BasicAuthHeader(creds models.Credentials) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds.EmailAddress+":"+creds.Password))
}
