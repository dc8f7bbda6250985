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

// auctionService is the concrete implementation of AuctionService.
// Ownership is enforced by the repository; the service keeps the cached
// auction resolution in sync with listing changes.
type auctionService struct {
	auctionRepository store.AuctionRepository
	winnerCache       store.WinnerCache

	now    func() time.Time
	logger *logger.Logger
}

// NewAuctionService constructs an AuctionService over the given repository
// and winner cache.
func NewAuctionService(auctionRepository store.AuctionRepository, winnerCache store.WinnerCache, logger *logger.Logger) AuctionService {
	return &auctionService{
		auctionRepository: auctionRepository,
		winnerCache:       winnerCache,
		now:               time.Now,
		logger:            logger,
	}
}

// CreateAuctionItem stores a new listing owned by item.CreatedBy.
func (s *auctionService) CreateAuctionItem(ctx context.Context, item models.AuctionItemCreate) (models.AuctionItem, error) {
	created, err := s.auctionRepository.CreateAuctionItem(ctx, item, s.now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*auctionService.CreateAuctionItem").Int64("user_id", item.CreatedBy).Msg("auction item creation failed")
		return models.AuctionItem{}, fmt.Errorf("auction item creation failed: %w", err)
	}

	return created, nil
}

func (s *auctionService) ListAuctionItems(ctx context.Context) ([]models.AuctionItem, error) {
	items, err := s.auctionRepository.ListAuctionItems(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*auctionService.ListAuctionItems").Msg("listing auction items failed")
		return nil, fmt.Errorf("listing auction items failed: %w", err)
	}

	return nonNil(items), nil
}

// GetAuctionItem returns a wrapped store.ErrAuctionItemNotFound for an
// unknown id.
func (s *auctionService) GetAuctionItem(ctx context.Context, itemID int64) (models.AuctionItem, error) {
	item, err := s.auctionRepository.GetAuctionItem(ctx, itemID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*auctionService.GetAuctionItem").Int64("item_id", itemID).Msg("getting auction item failed")
		return models.AuctionItem{}, fmt.Errorf("getting auction item failed: %w", err)
	}

	return item, nil
}

func (s *auctionService) ListAuctionItemsByOwner(ctx context.Context, ownerID int64) ([]models.AuctionItem, error) {
	items, err := s.auctionRepository.ListAuctionItemsByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*auctionService.ListAuctionItemsByOwner").Int64("user_id", ownerID).Msg("listing owned auction items failed")
		return nil, fmt.Errorf("listing owned auction items failed: %w", err)
	}

	return nonNil(items), nil
}

// UpdateAuctionItem applies a partial update on behalf of update.CallerID
// and drops any cached resolution of the item.
func (s *auctionService) UpdateAuctionItem(ctx context.Context, update models.AuctionItemUpdate) (models.AuctionItem, error) {
	updated, err := s.auctionRepository.UpdateAuctionItem(ctx, update, s.now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*auctionService.UpdateAuctionItem").
			Int64("item_id", update.ID).
			Int64("user_id", update.CallerID).
			Msg("auction item update failed")
		return models.AuctionItem{}, fmt.Errorf("auction item update failed: %w", err)
	}

	s.invalidateWinner(ctx, update.ID)

	return updated, nil
}

// DeleteAuctionItem removes the listing and all of its bids on behalf of
// callerID.
func (s *auctionService) DeleteAuctionItem(ctx context.Context, itemID, callerID int64) error {
	if err := s.auctionRepository.DeleteAuctionItem(ctx, itemID, callerID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*auctionService.DeleteAuctionItem").
			Int64("item_id", itemID).
			Int64("user_id", callerID).
			Msg("auction item deletion failed")
		return fmt.Errorf("auction item deletion failed: %w", err)
	}

	s.invalidateWinner(ctx, itemID)

	return nil
}

// invalidateWinner only logs failures: the listing change is already
// committed and a stale entry expires with its TTL.
func (s *auctionService) invalidateWinner(ctx context.Context, itemID int64) {
	if err := s.winnerCache.Invalidate(ctx, itemID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*auctionService.invalidateWinner").
			Int64("item_id", itemID).
			Msg("failed to invalidate cached winner")
	}
}

// nonNil makes empty results encode as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
