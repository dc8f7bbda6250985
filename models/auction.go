// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionItem is a listing with a starting price and an end time, owned by
// the user who created it.
type AuctionItem struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartingBid decimal.Decimal `json:"startingBid"`
	EndDate     time.Time       `json:"endDate"`
	CreatedBy   int64           `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// HasEnded reports whether the auction is closed at the given moment.
// An auction is closed from its end date onwards.
func (a AuctionItem) HasEnded(now time.Time) bool {
	return !now.Before(a.EndDate)
}

// TableName returns the name of the database table
// associated with the AuctionItem model.
func (a AuctionItem) TableName() string {
	return "auction_items"
}

// AuctionItemCreate is the request body for creating a listing.
// CreatedBy is never read from the body: it is set from the authenticated
// caller.
type AuctionItemCreate struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartingBid decimal.Decimal `json:"startingBid"`
	EndDate     time.Time       `json:"endDate"`
	CreatedBy   int64           `json:"-"`
}

// AuctionItemUpdate describes a partial update of a listing.
// Only non-nil fields are updated, so an explicit empty description or a
// zero starting bid is distinguishable from an absent one.
type AuctionItemUpdate struct {
	// ID is the identifier of the listing to update. Taken from the URL.
	ID int64 `json:"-"`

	// CallerID is the authenticated user performing the update.
	CallerID int64 `json:"-"`

	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	StartingBid *decimal.Decimal `json:"startingBid,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u AuctionItemUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.StartingBid == nil && u.EndDate == nil
}
