// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auction/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered users.
type UserRepository interface {
	// CreateUser inserts a user and returns it with its id and creation time.
	// Returns [ErrUsernameAlreadyExists] if the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns [ErrNoUserWasFound] if no user matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// GetUserByID returns [ErrNoUserWasFound] if no user matches.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// AuctionRepository persists auction items.
type AuctionRepository interface {
	CreateAuctionItem(ctx context.Context, item models.AuctionItemCreate, now time.Time) (models.AuctionItem, error)
	ListAuctionItems(ctx context.Context) ([]models.AuctionItem, error)
	// GetAuctionItem returns [ErrAuctionItemNotFound] if no item matches.
	GetAuctionItem(ctx context.Context, itemID int64) (models.AuctionItem, error)
	ListAuctionItemsByOwner(ctx context.Context, ownerID int64) ([]models.AuctionItem, error)
	// UpdateAuctionItem applies the present fields of update to an item owned
	// by update.CallerID. Returns [ErrAuctionItemNotFound] or
	// [ErrNotAuctionItemOwner].
	UpdateAuctionItem(ctx context.Context, update models.AuctionItemUpdate, now time.Time) (models.AuctionItem, error)
	// DeleteAuctionItem removes the item and all of its bids in one
	// transaction. Returns [ErrAuctionItemNotFound] or [ErrNotAuctionItemOwner].
	DeleteAuctionItem(ctx context.Context, itemID, ownerID int64) error
}

// BidRepository persists bids and answers the ranking queries used to
// resolve auctions.
type BidRepository interface {
	// PlaceBid inserts the caller's first bid on an item or raises the
	// existing one in a single conditional upsert. Returns [ErrBidNotHigher]
	// when the stored amount is not lower than the new one and
	// [ErrAuctionItemNotFound] when the item does not exist.
	PlaceBid(ctx context.Context, bid models.BidRequest, now time.Time) (models.BidPlacement, error)
	// GetBidHistory returns all bids on an item ordered by amount desc,
	// then placement time asc.
	GetBidHistory(ctx context.Context, itemID int64) ([]models.BidWithBidder, error)
	// GetBidsByUser returns the user's bids with their auction items embedded.
	GetBidsByUser(ctx context.Context, userID int64) ([]models.UserBid, error)
	// GetWinningBid returns the highest bid on an item, the earliest placed
	// one among equal amounts. Returns [ErrNoBids] if there are none.
	GetWinningBid(ctx context.Context, itemID int64) (models.Bid, error)
	// GetWonAuctions returns items ended at or before now whose winning bid
	// belongs to userID.
	GetWonAuctions(ctx context.Context, userID int64, now time.Time) ([]models.WonAuction, error)
}

// WinnerCache keeps final resolution results of ended auctions.
type WinnerCache interface {
	// Get returns [ErrCacheMiss] if nothing is cached for itemID.
	Get(ctx context.Context, itemID int64) (models.WinnerResult, error)
	Set(ctx context.Context, result models.WinnerResult) error
	Invalidate(ctx context.Context, itemID int64) error
}
