// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/MKhiriev/go-auction/internal/mock"
	"github.com/MKhiriev/go-auction/internal/store"
	"github.com/MKhiriev/go-auction/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type resolutionMocks struct {
	users    *mock.MockUserRepository
	auctions *mock.MockAuctionRepository
	bids     *mock.MockBidRepository
	cache    *mock.MockWinnerCache
}

func newTestResolutionSvc(t *testing.T, ctrl *gomock.Controller) (*resolutionService, resolutionMocks) {
	t.Helper()
	m := resolutionMocks{
		users:    mock.NewMockUserRepository(ctrl),
		auctions: mock.NewMockAuctionRepository(ctrl),
		bids:     mock.NewMockBidRepository(ctrl),
		cache:    mock.NewMockWinnerCache(ctrl),
	}

	svc := NewResolutionService(&store.Storages{
		UserRepository:    m.users,
		AuctionRepository: m.auctions,
		BidRepository:     m.bids,
		WinnerCache:       m.cache,
	}, logger.Nop()).(*resolutionService)
	svc.now = fixedClock

	return svc, m
}

func TestResolutionService_GetWinner(t *testing.T) {
	endedItem := models.AuctionItem{ID: 1, EndDate: testNow.Add(-time.Minute)}
	runningItem := models.AuctionItem{ID: 1, EndDate: testNow.Add(time.Minute)}
	winningBid := models.Bid{ID: 10, AuctionItemID: 1, UserID: 5, BidAmount: decimal.NewFromInt(150)}
	winner := models.User{UserID: 5, Username: "alice"}

	tests := []struct {
		name      string
		setupMock func(m resolutionMocks)
		check     func(t *testing.T, result models.WinnerResult)
		wantErr   error
	}{
		{
			name: "cached result is returned as is",
			setupMock: func(m resolutionMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(1)).Return(models.WinnerResult{AuctionID: 1, Status: models.AuctionWon, Winner: &winner}, nil)
			},
			check: func(t *testing.T, result models.WinnerResult) {
				assert.Equal(t, models.AuctionWon, result.Status)
				assert.Equal(t, "alice", result.Winner.Username)
			},
		},
		{
			name: "unknown item",
			setupMock: func(m resolutionMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(1)).Return(models.WinnerResult{}, store.ErrCacheMiss)
				m.auctions.EXPECT().GetAuctionItem(gomock.Any(), int64(1)).Return(models.AuctionItem{}, store.ErrAuctionItemNotFound)
			},
			wantErr: store.ErrAuctionItemNotFound,
		},
		{
			name: "running auction is not cached",
			setupMock: func(m resolutionMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(1)).Return(models.WinnerResult{}, store.ErrCacheMiss)
				m.auctions.EXPECT().GetAuctionItem(gomock.Any(), int64(1)).Return(runningItem, nil)
			},
			check: func(t *testing.T, result models.WinnerResult) {
				assert.Equal(t, models.AuctionNotEnded, result.Status)
				assert.Nil(t, result.Winner)
				assert.Nil(t, result.WinningBid)
				assert.Equal(t, runningItem.EndDate, result.EndDate)
			},
		},
		{
			name: "ended without bids",
			setupMock: func(m resolutionMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(1)).Return(models.WinnerResult{}, store.ErrCacheMiss)
				m.auctions.EXPECT().GetAuctionItem(gomock.Any(), int64(1)).Return(endedItem, nil)
				m.bids.EXPECT().GetWinningBid(gomock.Any(), int64(1)).Return(models.Bid{}, store.ErrNoBids)
				m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)
				m.auctions.EXPECT().GetAuctionItem(gomock.Any(), int64(1)).Return(endedItem, nil)
			},
			check: func(t *testing.T, result models.WinnerResult) {
				assert.Equal(t, models.AuctionNoBids, result.Status)
				assert.Nil(t, result.Winner)
			},
		},
		{
			name: "ended with a winner is cached",
			setupMock: func(m resolutionMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(1)).Return(models.WinnerResult{}, store.ErrCacheMiss)
				m.auctions.EXPECT().GetAuctionItem(gomock.Any(), int64(1)).Return(endedItem, nil)
				m.bids.EXPECT().GetWinningBid(gomock.Any(), int64(1)).Return(winningBid, nil)
				m.users.EXPECT().GetUserByID(gomock.Any(), int64(5)).Return(winner, nil)
				m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r models.WinnerResult) error {
						assert.Equal(t, models.AuctionWon, r.Status)
						assert.Equal(t, int64(1), r.AuctionID)
						return nil
					},
				)
				m.auctions.EXPECT().GetAuctionItem(gomock.Any(), int64(1)).Return(endedItem, nil)
			},
			check: func(t *testing.T, result models.WinnerResult) {
				assert.Equal(t, models.AuctionWon, result.Status)
				require.NotNil(t, result.Winner)
				assert.Equal(t, int64(5), result.Winner.UserID)
				require.NotNil(t, result.WinningBid)
				assert.True(t, decimal.NewFromInt(150).Equal(result.WinningBid.BidAmount))
			},
		},
		{
			name: "cache errors fall back to the database",
			setupMock: func(m resolutionMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(1)).Return(models.WinnerResult{}, errors.New("redis down"))
				m.auctions.EXPECT().GetAuctionItem(gomock.Any(), int64(1)).Return(endedItem, nil)
				m.bids.EXPECT().GetWinningBid(gomock.Any(), int64(1)).Return(winningBid, nil)
				m.users.EXPECT().GetUserByID(gomock.Any(), int64(5)).Return(winner, nil)
				m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			check: func(t *testing.T, result models.WinnerResult) {
				assert.Equal(t, models.AuctionWon, result.Status)
			},
		},
		{
			name: "result is dropped when the owner reopens the auction meanwhile",
			setupMock: func(m resolutionMocks) {
				reopened := endedItem
				reopened.EndDate = testNow.Add(time.Hour)
				reopened.UpdatedAt = testNow

				m.cache.EXPECT().Get(gomock.Any(), int64(1)).Return(models.WinnerResult{}, store.ErrCacheMiss)
				gomock.InOrder(
					m.auctions.EXPECT().GetAuctionItem(gomock.Any(), int64(1)).Return(endedItem, nil),
					m.bids.EXPECT().GetWinningBid(gomock.Any(), int64(1)).Return(winningBid, nil),
					m.users.EXPECT().GetUserByID(gomock.Any(), int64(5)).Return(winner, nil),
					m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil),
					m.auctions.EXPECT().GetAuctionItem(gomock.Any(), int64(1)).Return(reopened, nil),
					m.cache.EXPECT().Invalidate(gomock.Any(), int64(1)).Return(nil),
				)
			},
			check: func(t *testing.T, result models.WinnerResult) {
				assert.Equal(t, models.AuctionWon, result.Status)
			},
		},
		{
			name: "result is dropped when the item is deleted meanwhile",
			setupMock: func(m resolutionMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(1)).Return(models.WinnerResult{}, store.ErrCacheMiss)
				gomock.InOrder(
					m.auctions.EXPECT().GetAuctionItem(gomock.Any(), int64(1)).Return(endedItem, nil),
					m.bids.EXPECT().GetWinningBid(gomock.Any(), int64(1)).Return(models.Bid{}, store.ErrNoBids),
					m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil),
					m.auctions.EXPECT().GetAuctionItem(gomock.Any(), int64(1)).Return(models.AuctionItem{}, store.ErrAuctionItemNotFound),
					m.cache.EXPECT().Invalidate(gomock.Any(), int64(1)).Return(errors.New("redis down")),
				)
			},
			check: func(t *testing.T, result models.WinnerResult) {
				assert.Equal(t, models.AuctionNoBids, result.Status)
			},
		},
		{
			name: "orphaned winning bid",
			setupMock: func(m resolutionMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(1)).Return(models.WinnerResult{}, store.ErrCacheMiss)
				m.auctions.EXPECT().GetAuctionItem(gomock.Any(), int64(1)).Return(endedItem, nil)
				m.bids.EXPECT().GetWinningBid(gomock.Any(), int64(1)).Return(winningBid, nil)
				m.users.EXPECT().GetUserByID(gomock.Any(), int64(5)).Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: store.ErrNoUserWasFound,
		},
		{
			name: "winning bid query fails",
			setupMock: func(m resolutionMocks) {
				m.cache.EXPECT().Get(gomock.Any(), int64(1)).Return(models.WinnerResult{}, store.ErrCacheMiss)
				m.auctions.EXPECT().GetAuctionItem(gomock.Any(), int64(1)).Return(endedItem, nil)
				m.bids.EXPECT().GetWinningBid(gomock.Any(), int64(1)).Return(models.Bid{}, store.ErrExecutingQuery)
			},
			wantErr: store.ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestResolutionSvc(t, ctrl)
			tt.setupMock(m)

			result, err := svc.GetWinner(context.Background(), 1)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, result)
		})
	}
}

func TestResolutionService_GetAuctionsWonByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResolutionSvc(t, ctrl)

	want := []models.WonAuction{{AuctionID: 1, Title: "Lamp", WinningBid: decimal.NewFromInt(150)}}
	m.bids.EXPECT().GetWonAuctions(gomock.Any(), int64(5), testNow).Return(want, nil)

	got, err := svc.GetAuctionsWonByUser(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolutionService_GetAuctionsWonByUser_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResolutionSvc(t, ctrl)

	m.bids.EXPECT().GetWonAuctions(gomock.Any(), int64(5), testNow).Return(nil, nil)

	got, err := svc.GetAuctionsWonByUser(context.Background(), 5)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
