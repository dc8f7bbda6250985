// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a user with the same username
	// is already registered.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrAuctionItemNotFound is returned when an auction item id matches no row.
	ErrAuctionItemNotFound = errors.New("auction item was not found")

	// ErrNotAuctionItemOwner is returned when the caller tries to mutate an
	// auction item created by another user.
	ErrNotAuctionItemOwner = errors.New("auction item belongs to another user")

	// ErrBidNotHigher is returned by the conditional upsert when the caller
	// already holds a bid that is greater than or equal to the new amount.
	// The stored bid is left untouched.
	ErrBidNotHigher = errors.New("bid is not higher than the current bid")

	// ErrNoBids is returned when an auction item has no bids at all.
	ErrNoBids = errors.New("auction item has no bids")

	// ErrCacheMiss is returned by a cache when no entry exists for the key.
	ErrCacheMiss = errors.New("cache miss")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned for a database driver other than
	// pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
