// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/MKhiriev/go-auction/internal/store"
	"github.com/MKhiriev/go-auction/models"
)

// bidService is the concrete implementation of BidService.
type bidService struct {
	auctionRepository store.AuctionRepository
	bidRepository     store.BidRepository

	now    func() time.Time
	logger *logger.Logger
}

func NewBidService(auctionRepository store.AuctionRepository, bidRepository store.BidRepository, logger *logger.Logger) BidService {
	return &bidService{
		auctionRepository: auctionRepository,
		bidRepository:     bidRepository,
		now:               time.Now,
		logger:            logger,
	}
}

// PlaceBid records bid.UserID's offer on an item.
//
// The checks run in order:
//  1. the item must exist (store.ErrAuctionItemNotFound);
//  2. the auction must still be running (ErrAuctionEnded);
//  3. the amount must reach the starting bid (ErrBidTooLow);
//  4. a raise must be strictly higher than the stored bid
//     (store.ErrBidNotHigher), checked atomically by the repository.
func (s *bidService) PlaceBid(ctx context.Context, bid models.BidRequest) (models.BidPlacement, error) {
	log := logger.FromContext(ctx)
	now := s.now().UTC()

	item, err := s.auctionRepository.GetAuctionItem(ctx, bid.AuctionItemID)
	if err != nil {
		log.Err(err).Str("func", "*bidService.PlaceBid").Int64("item_id", bid.AuctionItemID).Msg("getting auction item failed")
		return models.BidPlacement{}, fmt.Errorf("getting auction item failed: %w", err)
	}

	if item.HasEnded(now) {
		log.Warn().Str("func", "*bidService.PlaceBid").Int64("item_id", item.ID).Time("end_date", item.EndDate).Msg("bid on ended auction")
		return models.BidPlacement{}, ErrAuctionEnded
	}

	if bid.BidAmount.LessThan(item.StartingBid) {
		log.Warn().Str("func", "*bidService.PlaceBid").
			Int64("item_id", item.ID).
			Stringer("bid_amount", bid.BidAmount).
			Stringer("starting_bid", item.StartingBid).
			Msg("bid is lower than the starting bid")
		return models.BidPlacement{}, ErrBidTooLow
	}

	placement, err := s.bidRepository.PlaceBid(ctx, bid, now)
	if err != nil {
		log.Err(err).Str("func", "*bidService.PlaceBid").Int64("item_id", item.ID).Int64("user_id", bid.UserID).Msg("placing bid failed")
		return models.BidPlacement{}, fmt.Errorf("placing bid failed: %w", err)
	}

	return placement, nil
}

// GetBidHistory lists the bids on an item, highest first. An unknown item has
// no bids, so it yields an empty list.
func (s *bidService) GetBidHistory(ctx context.Context, itemID int64) ([]models.BidWithBidder, error) {
	bids, err := s.bidRepository.GetBidHistory(ctx, itemID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bidService.GetBidHistory").Int64("item_id", itemID).Msg("getting bid history failed")
		return nil, fmt.Errorf("getting bid history failed: %w", err)
	}

	return nonNil(bids), nil
}

func (s *bidService) GetBidsByUser(ctx context.Context, userID int64) ([]models.UserBid, error) {
	bids, err := s.bidRepository.GetBidsByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bidService.GetBidsByUser").Int64("user_id", userID).Msg("getting user bids failed")
		return nil, fmt.Errorf("getting user bids failed: %w", err)
	}

	return nonNil(bids), nil
}
