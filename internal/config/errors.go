// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidConfig wraps every validation failure of the merged config.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidNetAddress is returned by [NetAddress.Set] for values that are
	// not of the form host:port.
	ErrInvalidNetAddress = errors.New("need address in a form `host:port`")
)
