// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")

	ErrInvalidUserID          = errors.New("invalid user ID")
	ErrInvalidAuctionItemID   = errors.New("auctionItemId is required")
	ErrEmptyTitle             = errors.New("title is required")
	ErrNonPositiveStartingBid = errors.New("startingBid must be a positive number")
	ErrMissingEndDate         = errors.New("endDate is required")
	ErrEndDateNotInFuture     = errors.New("endDate must be in the future")
	ErrNoFieldsToUpdate       = errors.New("at least one field must be provided for update")
	ErrNonPositiveBidAmount   = errors.New("bidAmount must be a positive number")
	ErrStartingBidPrecision   = errors.New("startingBid must have at most 2 decimal places")
	ErrStartingBidTooLarge    = errors.New("startingBid must be less than 1000000000000")
	ErrBidAmountPrecision     = errors.New("bidAmount must have at most 2 decimal places")
	ErrBidAmountTooLarge      = errors.New("bidAmount must be less than 1000000000000")
)
