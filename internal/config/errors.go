// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates that no database DSN was provided.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedDBDriver indicates a driver other than pgx or sqlite3.
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
	// ErrInvalidAppConfigs indicates missing token settings
	// (sign key, issuer or a non-positive duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCacheConfigs indicates an enabled cache with a non-positive TTL.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
)
