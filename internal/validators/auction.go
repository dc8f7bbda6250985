// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auction/models"
	"github.com/shopspring/decimal"
)

// Monetary columns are NUMERIC(14,2): two fractional digits and twelve integer ones.
const amountScale = 2

var maxAmount = decimal.New(1, 12)

type amountErrors struct {
	nonPositive error
	precision   error
	tooLarge    error
}

var (
	startingBidErrors = amountErrors{ErrNonPositiveStartingBid, ErrStartingBidPrecision, ErrStartingBidTooLarge}
	bidAmountErrors   = amountErrors{ErrNonPositiveBidAmount, ErrBidAmountPrecision, ErrBidAmountTooLarge}
)

// checkAmount rejects amounts the storage column would round or overflow.
func checkAmount(d decimal.Decimal, errs amountErrors) error {
	if !d.IsPositive() {
		return errs.nonPositive
	}
	if !d.Equal(d.Truncate(amountScale)) {
		return errs.precision
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return errs.tooLarge
	}
	return nil
}

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername      = "username"
	FieldPassword      = "password"
	FieldUserID        = "user_id"
	FieldTitle         = "title"
	FieldStartingBid   = "starting_bid"
	FieldEndDate       = "end_date"
	FieldAuctionItemID = "auction_item_id"
	FieldBidAmount     = "bid_amount"

	// FieldUpdateFields requires at least one field of a partial update to
	// be present.
	FieldUpdateFields = "update_fields"
)

// AuctionValidator implements [Validator] for the request models of the
// auction API: credentials, listing create/update requests and bids.
//
// Rules that depend on the current time (end dates) are checked against the
// validator's clock.
type AuctionValidator struct {
	now func() time.Time
}

// NewAuctionValidator constructs an [AuctionValidator] using the wall clock.
func NewAuctionValidator() Validator {
	return &AuctionValidator{now: time.Now}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of each model are accepted.
//
// Supported types:
//   - models.Credentials
//   - models.AuctionItemCreate
//   - models.AuctionItemUpdate
//   - models.BidRequest
//
// Returns ErrUnsupportedType for anything else.
func (v *AuctionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.AuctionItemCreate:
		return v.validateAuctionItemCreate(value, fields...)
	case *models.AuctionItemCreate:
		return v.validateAuctionItemCreate(*value, fields...)

	case models.AuctionItemUpdate:
		return v.validateAuctionItemUpdate(value, fields...)
	case *models.AuctionItemUpdate:
		return v.validateAuctionItemUpdate(*value, fields...)

	case models.BidRequest:
		return v.validateBidRequest(value, fields...)
	case *models.BidRequest:
		return v.validateBidRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuctionValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if credentials.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAuctionItemCreate checks a new listing.
//
// Default validated fields: Title, StartingBid, EndDate, UserID (owner).
func (v *AuctionValidator) validateAuctionItemCreate(item models.AuctionItemCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldStartingBid, FieldEndDate}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if item.CreatedBy <= 0 {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if item.Title == "" {
				return ErrEmptyTitle
			}
		case FieldStartingBid:
			if err := checkAmount(item.StartingBid, startingBidErrors); err != nil {
				return err
			}
		case FieldEndDate:
			if item.EndDate.IsZero() {
				return ErrMissingEndDate
			}
			if !item.EndDate.After(v.now()) {
				return ErrEndDateNotInFuture
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAuctionItemUpdate checks a partial update. Absent (nil) fields are
// not checked; present ones follow the same rules as on creation.
func (v *AuctionValidator) validateAuctionItemUpdate(update models.AuctionItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldUpdateFields, FieldTitle, FieldStartingBid, FieldEndDate}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if update.CallerID <= 0 {
				return ErrInvalidUserID
			}
		case FieldUpdateFields:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if update.Title != nil && *update.Title == "" {
				return ErrEmptyTitle
			}
		case FieldStartingBid:
			if update.StartingBid == nil {
				continue
			}
			if err := checkAmount(*update.StartingBid, startingBidErrors); err != nil {
				return err
			}
		case FieldEndDate:
			if update.EndDate != nil && !update.EndDate.After(v.now()) {
				return ErrEndDateNotInFuture
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuctionValidator) validateBidRequest(bid models.BidRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldAuctionItemID, FieldBidAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if bid.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldAuctionItemID:
			if bid.AuctionItemID <= 0 {
				return ErrInvalidAuctionItemID
			}
		case FieldBidAmount:
			if err := checkAmount(bid.BidAmount, bidAmountErrors); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
