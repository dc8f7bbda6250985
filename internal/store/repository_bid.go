// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/MKhiriev/go-auction/models"
)

// bidRepository is the SQL implementation of [BidRepository] over the
// "bids" table.
type bidRepository struct {
	*DB
	logger *logger.Logger
}

// NewBidRepository constructs a [BidRepository] backed by db.
func NewBidRepository(db *DB, logger *logger.Logger) BidRepository {
	logger.Debug().Msg("creating bid repository")
	return &bidRepository{
		DB:     db,
		logger: logger,
	}
}

// PlaceBid executes the conditional upsert built by [buildPlaceBidQuery].
//
// No returned row means the caller's stored bid is at least as high as the
// new amount; the stored bid is left untouched and [ErrBidNotHigher] is
// returned.
func (b *bidRepository) PlaceBid(ctx context.Context, bid models.BidRequest, now time.Time) (models.BidPlacement, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPlaceBidQuery(b.builder, bid, now.UTC())
	if err != nil {
		log.Err(err).Str("func", "bidRepository.PlaceBid").Msg("failed to build query")
		return models.BidPlacement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		placed models.Bid
		raises int64
	)
	err = b.QueryRowContext(ctx, query, args...).Scan(
		&placed.ID,
		&placed.AuctionItemID,
		&placed.UserID,
		&placed.BidAmount,
		scanTime(&placed.PlacedAt),
		scanTime(&placed.CreatedAt),
		&raises,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			log.Debug().
				Str("func", "bidRepository.PlaceBid").
				Int64("auction_item_id", bid.AuctionItemID).
				Int64("user_id", bid.UserID).
				Msg("bid is not higher than the stored one")
			return models.BidPlacement{}, ErrBidNotHigher
		case isForeignKeyViolation(err):
			return models.BidPlacement{}, ErrAuctionItemNotFound
		}

		log.Err(err).
			Str("func", "bidRepository.PlaceBid").
			Int64("auction_item_id", bid.AuctionItemID).
			Int64("user_id", bid.UserID).
			Msg("failed to upsert bid")
		return models.BidPlacement{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.BidPlacement{
		Bid:     placed,
		Created: raises == 0,
	}, nil
}

func (b *bidRepository) GetBidHistory(ctx context.Context, itemID int64) ([]models.BidWithBidder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildBidHistoryQuery(b.builder, itemID)
	if err != nil {
		log.Err(err).Str("func", "bidRepository.GetBidHistory").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := b.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bidRepository.GetBidHistory").
			Int64("auction_item_id", itemID).
			Msg("failed to execute query for bid history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	history := make([]models.BidWithBidder, 0, 16)
	for rows.Next() {
		var (
			bid      models.BidWithBidder
			username sql.NullString
		)
		scanErr := rows.Scan(
			&bid.ID,
			&bid.AuctionItemID,
			&bid.Bidder.UserID,
			&username,
			&bid.BidAmount,
			scanTime(&bid.PlacedAt),
			scanTime(&bid.CreatedAt),
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "bidRepository.GetBidHistory").Msg("failed to scan bid row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		bid.Bidder.Username = username.String

		history = append(history, bid)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "bidRepository.GetBidHistory").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return history, nil
}

func (b *bidRepository) GetBidsByUser(ctx context.Context, userID int64) ([]models.UserBid, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildBidsByUserQuery(b.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "bidRepository.GetBidsByUser").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := b.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bidRepository.GetBidsByUser").
			Int64("user_id", userID).
			Msg("failed to execute query for user bids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bids := make([]models.UserBid, 0, 16)
	for rows.Next() {
		var bid models.UserBid
		scanErr := rows.Scan(
			&bid.ID,
			&bid.UserID,
			&bid.BidAmount,
			scanTime(&bid.PlacedAt),
			scanTime(&bid.CreatedAt),
			&bid.AuctionItem.ID,
			&bid.AuctionItem.Title,
			&bid.AuctionItem.Description,
			&bid.AuctionItem.StartingBid,
			scanTime(&bid.AuctionItem.EndDate),
			&bid.AuctionItem.CreatedBy,
			scanTime(&bid.AuctionItem.CreatedAt),
			scanTime(&bid.AuctionItem.UpdatedAt),
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "bidRepository.GetBidsByUser").Msg("failed to scan bid row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		bids = append(bids, bid)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "bidRepository.GetBidsByUser").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bids, nil
}

func (b *bidRepository) GetWinningBid(ctx context.Context, itemID int64) (models.Bid, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildWinningBidQuery(b.builder, itemID)
	if err != nil {
		log.Err(err).Str("func", "bidRepository.GetWinningBid").Msg("failed to build query")
		return models.Bid{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	bid, err := scanBid(b.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bid{}, ErrNoBids
		}
		log.Err(err).
			Str("func", "bidRepository.GetWinningBid").
			Int64("auction_item_id", itemID).
			Msg("failed to query winning bid")
		return models.Bid{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return bid, nil
}

func (b *bidRepository) GetWonAuctions(ctx context.Context, userID int64, now time.Time) ([]models.WonAuction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildWonAuctionsQuery(b.builder, userID, now.UTC())
	if err != nil {
		log.Err(err).Str("func", "bidRepository.GetWonAuctions").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := b.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bidRepository.GetWonAuctions").
			Int64("user_id", userID).
			Msg("failed to execute query for won auctions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	won := make([]models.WonAuction, 0, 8)
	for rows.Next() {
		var w models.WonAuction
		if scanErr := rows.Scan(&w.AuctionID, &w.Title, &w.Description, &w.WinningBid, scanTime(&w.EndDate)); scanErr != nil {
			log.Err(scanErr).Str("func", "bidRepository.GetWonAuctions").Msg("failed to scan won auction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		won = append(won, w)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "bidRepository.GetWonAuctions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return won, nil
}

func scanBid(row rowScanner) (models.Bid, error) {
	var bid models.Bid
	err := row.Scan(
		&bid.ID,
		&bid.AuctionItemID,
		&bid.UserID,
		&bid.BidAmount,
		scanTime(&bid.PlacedAt),
		scanTime(&bid.CreatedAt),
	)
	return bid, err
}
