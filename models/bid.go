// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bid is a user's offer on an auction item. A user holds at most one bid per
// item; raising it updates the amount and PlacedAt in place.
type Bid struct {
	ID            int64           `json:"id"`
	AuctionItemID int64           `json:"auctionItemId"`
	UserID        int64           `json:"userId"`
	BidAmount     decimal.Decimal `json:"bidAmount"`

	// PlacedAt is when the current amount was placed. It is the tie-breaker
	// between equal amounts: the earlier bid wins.
	PlacedAt time.Time `json:"placedAt"`

	// CreatedAt is when the user first bid on the item.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Bid model.
func (b Bid) TableName() string {
	return "bids"
}

// BidRequest is the request body of the place-bid endpoint.
type BidRequest struct {
	AuctionItemID int64           `json:"auctionItemId"`
	BidAmount     decimal.Decimal `json:"bidAmount"`
	UserID        int64           `json:"-"`
}

// BidPlacement is the outcome of placing a bid.
type BidPlacement struct {
	Bid Bid

	// Created is true when this was the user's first bid on the item and
	// false when an existing bid was raised.
	Created bool
}

// Bidder is the public part of the user who placed a bid.
type Bidder struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

// BidWithBidder is a bid history entry: the bid with its user reference
// resolved to the bidder's public data.
type BidWithBidder struct {
	ID            int64           `json:"id"`
	AuctionItemID int64           `json:"auctionItemId"`
	Bidder        Bidder          `json:"userId"`
	BidAmount     decimal.Decimal `json:"bidAmount"`
	PlacedAt      time.Time       `json:"placedAt"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// UserBid is a bid placed by a user with its parent auction item embedded
// in place of the bare item reference.
type UserBid struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	BidAmount   decimal.Decimal `json:"bidAmount"`
	PlacedAt    time.Time       `json:"placedAt"`
	CreatedAt   time.Time       `json:"createdAt"`
	AuctionItem AuctionItem     `json:"auctionItem"`
}
