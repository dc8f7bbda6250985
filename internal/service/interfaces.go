// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-auction/models"
)

// AuthService registers users, checks their credentials and issues and
// verifies bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports what server build is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionResponse
}

// AuctionService manages auction listings and their ownership rules.
type AuctionService interface {
	CreateAuctionItem(ctx context.Context, item models.AuctionItemCreate) (models.AuctionItem, error)
	ListAuctionItems(ctx context.Context) ([]models.AuctionItem, error)
	GetAuctionItem(ctx context.Context, itemID int64) (models.AuctionItem, error)
	ListAuctionItemsByOwner(ctx context.Context, ownerID int64) ([]models.AuctionItem, error)
	UpdateAuctionItem(ctx context.Context, update models.AuctionItemUpdate) (models.AuctionItem, error)
	DeleteAuctionItem(ctx context.Context, itemID, callerID int64) error
}

// BidService places bids and reads the bid ledger.
type BidService interface {
	PlaceBid(ctx context.Context, bid models.BidRequest) (models.BidPlacement, error)
	GetBidHistory(ctx context.Context, itemID int64) ([]models.BidWithBidder, error)
	GetBidsByUser(ctx context.Context, userID int64) ([]models.UserBid, error)
}

// ResolutionService determines auction winners. Auctions close lazily: an
// auction is resolved by comparing its end date with the current time at
// read time.
type ResolutionService interface {
	GetWinner(ctx context.Context, itemID int64) (models.WinnerResult, error)
	GetAuctionsWonByUser(ctx context.Context, userID int64) ([]models.WonAuction, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// AuctionServiceWrapper defines middleware composition for AuctionService.
type AuctionServiceWrapper interface {
	Wrap(AuctionService) AuctionService
}

// BidServiceWrapper defines middleware composition for BidService.
type BidServiceWrapper interface {
	Wrap(BidService) BidService
}
