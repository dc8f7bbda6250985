// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrWrongPassword           = errors.New("wrong password")
	ErrInvalidCredentials      = errors.New("invalid username or password")
	ErrPasswordHashing         = errors.New("error hashing password")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrAuctionEnded = errors.New("auction has already ended")
	ErrBidTooLow    = errors.New("bid amount is lower than the starting bid")
)
