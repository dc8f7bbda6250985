// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors produced by the transport layer itself, before a request reaches
// the services.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when the request body is missing or is not
	// valid JSON for the endpoint.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when a path id is not a positive integer.
	ErrInvalidID = errors.New("id must be a positive integer")

	// ErrNoCallerID is returned when an authenticated route runs without a
	// user id in the request context.
	ErrNoCallerID = errors.New("unauthorized")

	// ErrInvalidGzipBody is returned when a request declares gzip encoding
	// but the body cannot be decompressed.
	ErrInvalidGzipBody = errors.New("invalid gzip data")
)
