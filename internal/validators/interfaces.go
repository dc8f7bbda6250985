// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks auction requests before they reach storage.
//
// A Validator is injected into the service validation decorators. Callers may
// pass field names to restrict a check to part of a request; with no fields
// the request type's default set is validated.
package validators

import "context"

// Validator validates a request value, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
