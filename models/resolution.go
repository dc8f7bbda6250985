// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the resolution state of an auction at read time.
type AuctionStatus string

const (
	// AuctionNotEnded means the end date has not been reached yet.
	AuctionNotEnded AuctionStatus = "not_ended"

	// AuctionNoBids means the auction ended without a single bid.
	AuctionNoBids AuctionStatus = "no_bids"

	// AuctionWon means the auction ended and has a winner.
	AuctionWon AuctionStatus = "won"
)

// WinnerResult is the resolution of a single auction.
// Winner and WinningBid are set only when Status is [AuctionWon].
type WinnerResult struct {
	AuctionID  int64         `json:"auctionId"`
	Status     AuctionStatus `json:"status"`
	Message    string        `json:"message"`
	EndDate    time.Time     `json:"endDate"`
	Winner     *User         `json:"winner"`
	WinningBid *Bid          `json:"winningBid,omitempty"`
}

// IsFinal reports whether the result can no longer change on its own.
// Only ended auctions are final; a running auction may still receive bids.
func (r WinnerResult) IsFinal() bool {
	return r.Status == AuctionNoBids || r.Status == AuctionWon
}

// WonAuction is an ended auction whose highest bid belongs to the user
// the list was built for.
type WonAuction struct {
	AuctionID   int64           `json:"auctionId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	WinningBid  decimal.Decimal `json:"winningBid"`
	EndDate     time.Time       `json:"endDate"`
}
