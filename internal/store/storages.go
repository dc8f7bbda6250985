// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-auction/internal/logger"
)

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository    UserRepository
	AuctionRepository AuctionRepository
	BidRepository     BidRepository
	WinnerCache       WinnerCache
}

// NewStorages builds the SQL repositories over db. A nil cache is replaced
// with the cache returned by [NewNopWinnerCache].
func NewStorages(db *DB, cache WinnerCache, logger *logger.Logger) *Storages {
	if cache == nil {
		cache = NewNopWinnerCache()
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		AuctionRepository: NewAuctionRepository(db, logger),
		BidRepository:     NewBidRepository(db, logger),
		WinnerCache:       cache,
	}
}
