// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/MKhiriev/go-auction/internal/store"
	"github.com/MKhiriev/go-auction/models"
)

const (
	messageNotEnded = "auction has not ended yet"
	messageNoBids   = "auction ended with no bids"
	messageWon      = "auction has a winner"
)

// resolutionService is the concrete implementation of ResolutionService.
//
// Final results are kept in the winner cache; running auctions are always
// resolved from the database.
type resolutionService struct {
	userRepository    store.UserRepository
	auctionRepository store.AuctionRepository
	bidRepository     store.BidRepository
	winnerCache       store.WinnerCache

	now    func() time.Time
	logger *logger.Logger
}

func NewResolutionService(storages *store.Storages, logger *logger.Logger) ResolutionService {
	return &resolutionService{
		userRepository:    storages.UserRepository,
		auctionRepository: storages.AuctionRepository,
		bidRepository:     storages.BidRepository,
		winnerCache:       storages.WinnerCache,
		now:               time.Now,
		logger:            logger,
	}
}

// GetWinner resolves an auction at the current time.
//
// Returns a wrapped store.ErrAuctionItemNotFound for an unknown item and a
// wrapped store.ErrNoUserWasFound when the winning bid belongs to a user
// that no longer exists.
func (s *resolutionService) GetWinner(ctx context.Context, itemID int64) (models.WinnerResult, error) {
	log := logger.FromContext(ctx)

	cached, err := s.winnerCache.Get(ctx, itemID)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, store.ErrCacheMiss):
		log.Warn().Err(err).Str("func", "*resolutionService.GetWinner").Int64("item_id", itemID).Msg("winner cache read failed")
	}

	item, err := s.auctionRepository.GetAuctionItem(ctx, itemID)
	if err != nil {
		log.Err(err).Str("func", "*resolutionService.GetWinner").Int64("item_id", itemID).Msg("getting auction item failed")
		return models.WinnerResult{}, fmt.Errorf("getting auction item failed: %w", err)
	}

	result := models.WinnerResult{
		AuctionID: item.ID,
		EndDate:   item.EndDate,
	}

	if !item.HasEnded(s.now().UTC()) {
		result.Status = models.AuctionNotEnded
		result.Message = messageNotEnded
		return result, nil
	}

	bid, err := s.bidRepository.GetWinningBid(ctx, item.ID)
	switch {
	case errors.Is(err, store.ErrNoBids):
		result.Status = models.AuctionNoBids
		result.Message = messageNoBids
		s.cacheWinner(ctx, item, result)
		return result, nil
	case err != nil:
		log.Err(err).Str("func", "*resolutionService.GetWinner").Int64("item_id", item.ID).Msg("getting winning bid failed")
		return models.WinnerResult{}, fmt.Errorf("getting winning bid failed: %w", err)
	}

	winner, err := s.userRepository.GetUserByID(ctx, bid.UserID)
	if err != nil {
		log.Err(err).Str("func", "*resolutionService.GetWinner").Int64("item_id", item.ID).Int64("user_id", bid.UserID).Msg("getting winner failed")
		return models.WinnerResult{}, fmt.Errorf("getting winner failed: %w", err)
	}

	result.Status = models.AuctionWon
	result.Message = messageWon
	result.Winner = &winner
	result.WinningBid = &bid
	s.cacheWinner(ctx, item, result)

	return result, nil
}

// GetAuctionsWonByUser lists the ended auctions whose winning bid is userID's.
func (s *resolutionService) GetAuctionsWonByUser(ctx context.Context, userID int64) ([]models.WonAuction, error) {
	won, err := s.bidRepository.GetWonAuctions(ctx, userID, s.now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*resolutionService.GetAuctionsWonByUser").Int64("user_id", userID).Msg("getting won auctions failed")
		return nil, fmt.Errorf("getting won auctions failed: %w", err)
	}

	return nonNil(won), nil
}

// cacheWinner stores a final result resolved from item, then re-reads the item
// and drops the entry if it was changed or deleted in the meantime. Updates
// invalidate the cache after they commit, so any change the re-read misses is
// invalidated after this Set.
func (s *resolutionService) cacheWinner(ctx context.Context, item models.AuctionItem, result models.WinnerResult) {
	log := logger.FromContext(ctx)

	if err := s.winnerCache.Set(ctx, result); err != nil {
		log.Warn().Err(err).
			Str("func", "*resolutionService.cacheWinner").
			Int64("item_id", result.AuctionID).
			Msg("winner cache write failed")
		return
	}

	current, err := s.auctionRepository.GetAuctionItem(ctx, item.ID)
	if err == nil && current.UpdatedAt.Equal(item.UpdatedAt) && current.EndDate.Equal(item.EndDate) {
		return
	}

	log.Debug().Err(err).
		Str("func", "*resolutionService.cacheWinner").
		Int64("item_id", item.ID).
		Msg("auction item changed while resolving, dropping cached winner")
	if err = s.winnerCache.Invalidate(ctx, item.ID); err != nil {
		log.Warn().Err(err).
			Str("func", "*resolutionService.cacheWinner").
			Int64("item_id", item.ID).
			Msg("failed to drop cached winner")
	}
}
