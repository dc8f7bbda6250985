// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-auction/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{"id", "username", "password_hash", "created_at"}

	auctionItemColumns = []string{
		"id", "title", "description", "starting_bid", "end_date",
		"created_by", "created_at", "updated_at",
	}

	bidColumns = []string{
		"id", "auction_item_id", "user_id", "bid_amount", "placed_at", "created_at",
	}

	// placedBidColumns adds the raise counter, which is zero only on a row the
	// upsert has just inserted.
	placedBidColumns = append(bidColumns[:len(bidColumns):len(bidColumns)], "raises")
)

// bidRankingOrder ranks the bids of one item: highest amount first, then the
// earliest placement, then the lowest id.
var bidRankingOrder = []string{"bid_amount DESC", "placed_at ASC", "id ASC"}

// returning renders a RETURNING clause for columns.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func prefixed(prefix string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = prefix + "." + c
	}
	return out
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("username", "password_hash", "created_at").
		Values(user.Username, user.PasswordHash, now).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

// ── auction items ─────────────────────────────────────────────────────────────

func buildCreateAuctionItemQuery(b sq.StatementBuilderType, item models.AuctionItemCreate, now time.Time) (string, []any, error) {
	return b.Insert(models.AuctionItem{}.TableName()).
		Columns("title", "description", "starting_bid", "end_date", "created_by", "created_at", "updated_at").
		Values(item.Title, item.Description, item.StartingBid, item.EndDate.UTC(), item.CreatedBy, now, now).
		Suffix(returning(auctionItemColumns)).
		ToSql()
}

// buildListAuctionItemsQuery lists all items, or only the ones created by
// ownerID when it is non-nil.
func buildListAuctionItemsQuery(b sq.StatementBuilderType, ownerID *int64) (string, []any, error) {
	q := b.Select(auctionItemColumns...).
		From(models.AuctionItem{}.TableName()).
		OrderBy("id ASC")
	if ownerID != nil {
		q = q.Where(sq.Eq{"created_by": *ownerID})
	}
	return q.ToSql()
}

func buildGetAuctionItemQuery(b sq.StatementBuilderType, itemID int64) (string, []any, error) {
	return b.Select(auctionItemColumns...).
		From(models.AuctionItem{}.TableName()).
		Where(sq.Eq{"id": itemID}).
		ToSql()
}

// buildUpdateAuctionItemQuery sets only the fields present in update. The
// WHERE clause also matches created_by, so a non-owner never changes a row.
func buildUpdateAuctionItemQuery(b sq.StatementBuilderType, update models.AuctionItemUpdate, now time.Time) (string, []any, error) {
	q := b.Update(models.AuctionItem{}.TableName())

	if update.Title != nil {
		q = q.Set("title", *update.Title)
	}
	if update.Description != nil {
		q = q.Set("description", *update.Description)
	}
	if update.StartingBid != nil {
		q = q.Set("starting_bid", *update.StartingBid)
	}
	if update.EndDate != nil {
		q = q.Set("end_date", update.EndDate.UTC())
	}

	return q.Set("updated_at", now).
		Where(sq.Eq{"id": update.ID, "created_by": update.CallerID}).
		Suffix(returning(auctionItemColumns)).
		ToSql()
}

func buildGetAuctionItemOwnerQuery(b sq.StatementBuilderType, itemID int64) (string, []any, error) {
	return b.Select("created_by").
		From(models.AuctionItem{}.TableName()).
		Where(sq.Eq{"id": itemID}).
		ToSql()
}

func buildDeleteBidsOfItemQuery(b sq.StatementBuilderType, itemID int64) (string, []any, error) {
	return b.Delete(models.Bid{}.TableName()).
		Where(sq.Eq{"auction_item_id": itemID}).
		ToSql()
}

func buildDeleteAuctionItemQuery(b sq.StatementBuilderType, itemID, ownerID int64) (string, []any, error) {
	return b.Delete(models.AuctionItem{}.TableName()).
		Where(sq.Eq{"id": itemID, "created_by": ownerID}).
		ToSql()
}

// ── bids ──────────────────────────────────────────────────────────────────────

// buildPlaceBidQuery inserts the first bid of a user on an item, or raises the
// stored amount when the new one is strictly higher. When the stored amount is
// not lower, the statement changes nothing and returns no row.
//
// Every raise increments the raises column, so a returned raises of zero means
// the row was inserted.
func buildPlaceBidQuery(b sq.StatementBuilderType, bid models.BidRequest, now time.Time) (string, []any, error) {
	return b.Insert(models.Bid{}.TableName()).
		Columns("auction_item_id", "user_id", "bid_amount", "placed_at", "created_at").
		Values(bid.AuctionItemID, bid.UserID, bid.BidAmount, now, now).
		Suffix("ON CONFLICT (auction_item_id, user_id) DO UPDATE " +
			"SET bid_amount = EXCLUDED.bid_amount, placed_at = EXCLUDED.placed_at, raises = bids.raises + 1 " +
			"WHERE bids.bid_amount < EXCLUDED.bid_amount " +
			returning(placedBidColumns)).
		ToSql()
}

func buildBidHistoryQuery(b sq.StatementBuilderType, itemID int64) (string, []any, error) {
	return b.Select(
		"b.id", "b.auction_item_id", "b.user_id", "u.username",
		"b.bid_amount", "b.placed_at", "b.created_at",
	).
		From("bids b").
		LeftJoin("users u ON u.id = b.user_id").
		Where(sq.Eq{"b.auction_item_id": itemID}).
		OrderBy(prefixed("b", bidRankingOrder)...).
		ToSql()
}

func buildBidsByUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	columns := append(
		[]string{"b.id", "b.user_id", "b.bid_amount", "b.placed_at", "b.created_at"},
		prefixed("ai", auctionItemColumns)...,
	)

	return b.Select(columns...).
		From("bids b").
		Join("auction_items ai ON ai.id = b.auction_item_id").
		Where(sq.Eq{"b.user_id": userID}).
		OrderBy("b.placed_at DESC", "b.id DESC").
		ToSql()
}

func buildWinningBidQuery(b sq.StatementBuilderType, itemID int64) (string, []any, error) {
	return b.Select(bidColumns...).
		From(models.Bid{}.TableName()).
		Where(sq.Eq{"auction_item_id": itemID}).
		OrderBy(bidRankingOrder...).
		Limit(1).
		ToSql()
}

// buildWonAuctionsQuery ranks the bids of every item userID has bid on and
// keeps the ended items whose top-ranked bid is the user's.
func buildWonAuctionsQuery(b sq.StatementBuilderType, userID int64, now time.Time) (string, []any, error) {
	ranked := b.Select(
		"auction_item_id", "user_id", "bid_amount",
		"ROW_NUMBER() OVER (PARTITION BY auction_item_id ORDER BY "+strings.Join(bidRankingOrder, ", ")+") AS rn",
	).
		From(models.Bid{}.TableName()).
		Where("auction_item_id IN (SELECT auction_item_id FROM bids WHERE user_id = ?)", userID)

	return b.Select("ai.id", "ai.title", "ai.description", "r.bid_amount", "ai.end_date").
		FromSelect(ranked, "r").
		Join("auction_items ai ON ai.id = r.auction_item_id").
		Where(sq.Eq{"r.rn": 1, "r.user_id": userID}).
		Where(sq.LtOrEq{"ai.end_date": now}).
		OrderBy("ai.end_date DESC", "ai.id ASC").
		ToSql()
}
