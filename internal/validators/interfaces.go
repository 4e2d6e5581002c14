// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the Remote Session
// API. Validation runs locally, so malformed credentials or a too-short new
// password never cost a network round trip.
package validators

import "context"

// Validator validates v. fields, when given, restrict the check to the named
// struct fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
