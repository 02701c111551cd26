// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

// DefaultPasswordCost is used when no cost is configured.
const DefaultPasswordCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash of password. The hash embeds its salt
// and cost, so ComparePassword needs nothing else to verify it.
//
// cost is clamped to [bcrypt.MinCost, bcrypt.MaxCost]; zero selects
// [DefaultPasswordCost].
func HashPassword(password string, cost int) (string, error) {
	switch {
	case cost == 0:
		cost = DefaultPasswordCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether password resolves to hash.
func ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
