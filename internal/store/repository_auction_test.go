// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/MKhiriev/go-auction/models"
	"github.com/jackc/pgerrcode"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var auctionRowColumns = []string{
	"id", "title", "description", "starting_bid", "end_date", "created_by", "created_at", "updated_at",
}

func newTestAuctionRepo(t *testing.T) (*auctionRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewAuctionRepository(db, logger.Nop()).(*auctionRepository), mock
}

func auctionRow(id int64, owner int64, end time.Time) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(auctionRowColumns).
		AddRow(id, "Lamp", "Brass lamp", "100.00", end, owner, now, now)
}

// ── CreateAuctionItem ─────────────────────────────────────────────────────────

func TestCreateAuctionItem_Success(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)
	end := time.Now().Add(time.Hour).UTC()

	mock.ExpectQuery("INSERT INTO auction_items").
		WithArgs("Lamp", "Brass lamp", decimal.RequireFromString("100"), sqlmock.AnyArg(), int64(5), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(auctionRow(1, 5, end))

	item, err := repo.CreateAuctionItem(context.Background(), models.AuctionItemCreate{
		Title:       "Lamp",
		Description: "Brass lamp",
		StartingBid: decimal.RequireFromString("100"),
		EndDate:     end,
		CreatedBy:   5,
	}, time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, int64(5), item.CreatedBy)
	assert.True(t, decimal.RequireFromString("100").Equal(item.StartingBid))
	assert.True(t, end.Equal(item.EndDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAuctionItem_DBError(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)

	mock.ExpectQuery("INSERT INTO auction_items").WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.CreateAuctionItem(context.Background(), models.AuctionItemCreate{Title: "x"}, time.Now())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── List ──────────────────────────────────────────────────────────────────────

func TestListAuctionItems(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)
	end := time.Now().Add(time.Hour)

	rows := auctionRow(1, 5, end).AddRow(2, "Chair", "", "15.50", end, 6, end, end)
	mock.ExpectQuery("SELECT (.+) FROM auction_items ORDER BY id ASC").WillReturnRows(rows)

	items, err := repo.ListAuctionItems(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Chair", items[1].Title)
	assert.True(t, decimal.RequireFromString("15.5").Equal(items[1].StartingBid))
}

func TestListAuctionItems_Empty(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM auction_items").WillReturnRows(sqlmock.NewRows(auctionRowColumns))

	items, err := repo.ListAuctionItems(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListAuctionItems_ScanError(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)

	rows := sqlmock.NewRows(auctionRowColumns).
		AddRow("not-an-id", "t", "d", "1", time.Now(), 1, time.Now(), time.Now())
	mock.ExpectQuery("SELECT (.+) FROM auction_items").WillReturnRows(rows)

	_, err := repo.ListAuctionItems(context.Background())

	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestListAuctionItemsByOwner(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM auction_items WHERE created_by = \\$1").
		WithArgs(int64(5)).
		WillReturnRows(auctionRow(1, 5, time.Now()))

	items, err := repo.ListAuctionItemsByOwner(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(5), items[0].CreatedBy)
}

// ── GetAuctionItem ────────────────────────────────────────────────────────────

func TestGetAuctionItem_NotFound(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM auction_items WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(auctionRowColumns))

	_, err := repo.GetAuctionItem(context.Background(), 9)

	assert.ErrorIs(t, err, ErrAuctionItemNotFound)
}

// ── UpdateAuctionItem ─────────────────────────────────────────────────────────

func TestUpdateAuctionItem_Success(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)
	title := "New title"

	mock.ExpectQuery("UPDATE auction_items SET title = \\$1, updated_at = \\$2 WHERE created_by = \\$3 AND id = \\$4").
		WithArgs(title, sqlmock.AnyArg(), int64(5), int64(1)).
		WillReturnRows(auctionRow(1, 5, time.Now()))

	_, err := repo.UpdateAuctionItem(context.Background(), models.AuctionItemUpdate{
		ID: 1, CallerID: 5, Title: &title,
	}, time.Now())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAuctionItem_NoRowMatched(t *testing.T) {
	tests := []struct {
		name    string
		owner   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "other owner",
			owner: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT created_by FROM auction_items").
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"created_by"}).AddRow(99))
			},
			wantErr: ErrNotAuctionItemOwner,
		},
		{
			name: "missing item",
			owner: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT created_by FROM auction_items").
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"created_by"}))
			},
			wantErr: ErrAuctionItemNotFound,
		},
		{
			name: "deleted between statements",
			owner: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT created_by FROM auction_items").
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"created_by"}).AddRow(5))
			},
			wantErr: ErrAuctionItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestAuctionRepo(t)
			desc := ""

			mock.ExpectQuery("UPDATE auction_items").WillReturnRows(sqlmock.NewRows(auctionRowColumns))
			tt.owner(mock)

			_, err := repo.UpdateAuctionItem(context.Background(), models.AuctionItemUpdate{
				ID: 1, CallerID: 5, Description: &desc,
			}, time.Now())

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateAuctionItem_DBError(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)
	title := "t"

	mock.ExpectQuery("UPDATE auction_items").WillReturnError(errors.New("boom"))

	_, err := repo.UpdateAuctionItem(context.Background(), models.AuctionItemUpdate{ID: 1, CallerID: 5, Title: &title}, time.Now())

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── DeleteAuctionItem ─────────────────────────────────────────────────────────

func TestDeleteAuctionItem_Success(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT created_by FROM auction_items").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"created_by"}).AddRow(5))
	mock.ExpectExec("DELETE FROM bids WHERE auction_item_id").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM auction_items WHERE created_by = \\$1 AND id = \\$2").
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteAuctionItem(context.Background(), 1, 5)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAuctionItem_NotOwnerRollsBack(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT created_by FROM auction_items").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"created_by"}).AddRow(6))
	mock.ExpectRollback()

	err := repo.DeleteAuctionItem(context.Background(), 1, 5)

	assert.ErrorIs(t, err, ErrNotAuctionItemOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAuctionItem_BidDeleteFailsRollsBack(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT created_by FROM auction_items").
		WillReturnRows(sqlmock.NewRows([]string{"created_by"}).AddRow(5))
	mock.ExpectExec("DELETE FROM bids").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.DeleteAuctionItem(context.Background(), 1, 5)

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAuctionItem_RetriesSerializationFailure(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)

	// first attempt
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT created_by FROM auction_items").
		WillReturnRows(sqlmock.NewRows([]string{"created_by"}).AddRow(5))
	mock.ExpectExec("DELETE FROM bids").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()
	// second attempt
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT created_by FROM auction_items").
		WillReturnRows(sqlmock.NewRows([]string{"created_by"}).AddRow(5))
	mock.ExpectExec("DELETE FROM bids").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM auction_items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteAuctionItem(context.Background(), 1, 5)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAuctionItem_GivesUpAfterMaxAttempts(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)

	for i := 0; i < maxTxAttempts; i++ {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT created_by FROM auction_items").
			WillReturnError(pgError(pgerrcode.DeadlockDetected))
		mock.ExpectRollback()
	}

	err := repo.DeleteAuctionItem(context.Background(), 1, 5)

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAuctionItem_BeginFails(t *testing.T) {
	repo, mock := newTestAuctionRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := repo.DeleteAuctionItem(context.Background(), 1, 5)

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}
