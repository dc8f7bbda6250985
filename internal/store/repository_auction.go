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

// auctionRepository is the SQL implementation of [AuctionRepository] over
// the "auction_items" table.
type auctionRepository struct {
	*DB
	logger *logger.Logger
}

// NewAuctionRepository constructs an [AuctionRepository] backed by db.
func NewAuctionRepository(db *DB, logger *logger.Logger) AuctionRepository {
	logger.Debug().Msg("creating auction repository")
	return &auctionRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *auctionRepository) CreateAuctionItem(ctx context.Context, item models.AuctionItemCreate, now time.Time) (models.AuctionItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAuctionItemQuery(a.builder, item, now.UTC())
	if err != nil {
		log.Err(err).Str("func", "auctionRepository.CreateAuctionItem").Msg("failed to build query")
		return models.AuctionItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAuctionItem(a.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "auctionRepository.CreateAuctionItem").
			Int64("created_by", item.CreatedBy).
			Msg("failed to insert auction item")
		return models.AuctionItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (a *auctionRepository) ListAuctionItems(ctx context.Context) ([]models.AuctionItem, error) {
	return a.listAuctionItems(ctx, "auctionRepository.ListAuctionItems", nil)
}

func (a *auctionRepository) ListAuctionItemsByOwner(ctx context.Context, ownerID int64) ([]models.AuctionItem, error) {
	return a.listAuctionItems(ctx, "auctionRepository.ListAuctionItemsByOwner", &ownerID)
}

func (a *auctionRepository) listAuctionItems(ctx context.Context, funcName string, ownerID *int64) ([]models.AuctionItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAuctionItemsQuery(a.builder, ownerID)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for listing auction items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.AuctionItem, 0, 16)
	for rows.Next() {
		item, scanErr := scanAuctionItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan auction item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (a *auctionRepository) GetAuctionItem(ctx context.Context, itemID int64) (models.AuctionItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAuctionItemQuery(a.builder, itemID)
	if err != nil {
		log.Err(err).Str("func", "auctionRepository.GetAuctionItem").Msg("failed to build query")
		return models.AuctionItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanAuctionItem(a.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuctionItem{}, ErrAuctionItemNotFound
		}
		log.Err(err).
			Str("func", "auctionRepository.GetAuctionItem").
			Int64("auction_item_id", itemID).
			Msg("failed to query auction item")
		return models.AuctionItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

// UpdateAuctionItem runs a single UPDATE constrained by id and created_by.
// When it matches nothing, the owner lookup tells a missing item from a
// foreign one.
func (a *auctionRepository) UpdateAuctionItem(ctx context.Context, update models.AuctionItemUpdate, now time.Time) (models.AuctionItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAuctionItemQuery(a.builder, update, now.UTC())
	if err != nil {
		log.Err(err).Str("func", "auctionRepository.UpdateAuctionItem").Msg("failed to build query")
		return models.AuctionItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanAuctionItem(a.QueryRowContext(ctx, query, args...))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "auctionRepository.UpdateAuctionItem").
			Int64("auction_item_id", update.ID).
			Msg("failed to update auction item")
		return models.AuctionItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if ownerErr := a.checkOwner(ctx, a.DB.DB, update.ID, update.CallerID); ownerErr != nil {
		return models.AuctionItem{}, ownerErr
	}

	// the row was deleted between the two statements
	return models.AuctionItem{}, ErrAuctionItemNotFound
}

// DeleteAuctionItem removes all bids of the item and then the item itself in
// one transaction.
func (a *auctionRepository) DeleteAuctionItem(ctx context.Context, itemID, ownerID int64) error {
	log := logger.FromContext(ctx)

	err := a.withTx(ctx, func(tx *sql.Tx) error {
		if err := a.checkOwner(ctx, tx, itemID, ownerID); err != nil {
			return err
		}

		deleteBids, args, err := buildDeleteBidsOfItemQuery(a.builder, itemID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err := tx.ExecContext(ctx, deleteBids, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if deleted, affErr := res.RowsAffected(); affErr == nil {
			log.Debug().
				Str("func", "auctionRepository.DeleteAuctionItem").
				Int64("auction_item_id", itemID).
				Int64("bids_deleted", deleted).
				Msg("deleted bids of auction item")
		}

		deleteItem, args, err := buildDeleteAuctionItemQuery(a.builder, itemID, ownerID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err = tx.ExecContext(ctx, deleteItem, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrAuctionItemNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAuctionItemNotFound) || errors.Is(err, ErrNotAuctionItemOwner) {
			return err
		}
		log.Err(err).
			Str("func", "auctionRepository.DeleteAuctionItem").
			Int64("auction_item_id", itemID).
			Msg("failed to delete auction item")
		return err
	}

	return nil
}

// queryRower is implemented by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// checkOwner returns [ErrAuctionItemNotFound] if the item does not exist and
// [ErrNotAuctionItemOwner] if it was created by someone other than ownerID.
func (a *auctionRepository) checkOwner(ctx context.Context, q queryRower, itemID, ownerID int64) error {
	query, args, err := buildGetAuctionItemOwnerQuery(a.builder, itemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var createdBy int64
	if err = q.QueryRowContext(ctx, query, args...).Scan(&createdBy); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAuctionItemNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if createdBy != ownerID {
		return ErrNotAuctionItemOwner
	}

	return nil
}

func scanAuctionItem(row rowScanner) (models.AuctionItem, error) {
	var item models.AuctionItem
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.StartingBid,
		scanTime(&item.EndDate),
		&item.CreatedBy,
		scanTime(&item.CreatedAt),
		scanTime(&item.UpdatedAt),
	)
	return item, err
}
