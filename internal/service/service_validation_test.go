// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-auction/internal/validators"
	"github.com/MKhiriev/go-auction/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Hand-written inner services: they record whether the decorator let the
// call through.

type stubAuthService struct {
	AuthService
	called bool
}

func (s *stubAuthService) RegisterUser(context.Context, models.Credentials) (models.User, error) {
	s.called = true
	return models.User{UserID: 1}, nil
}

func (s *stubAuthService) Login(context.Context, models.Credentials) (models.User, error) {
	s.called = true
	return models.User{UserID: 1}, nil
}

type stubAuctionService struct {
	AuctionService
	called bool
}

func (s *stubAuctionService) CreateAuctionItem(context.Context, models.AuctionItemCreate) (models.AuctionItem, error) {
	s.called = true
	return models.AuctionItem{ID: 1}, nil
}

func (s *stubAuctionService) UpdateAuctionItem(context.Context, models.AuctionItemUpdate) (models.AuctionItem, error) {
	s.called = true
	return models.AuctionItem{ID: 1}, nil
}

func (s *stubAuctionService) DeleteAuctionItem(context.Context, int64, int64) error {
	s.called = true
	return nil
}

type stubBidService struct {
	BidService
	called bool
}

func (s *stubBidService) PlaceBid(context.Context, models.BidRequest) (models.BidPlacement, error) {
	s.called = true
	return models.BidPlacement{Created: true}, nil
}

func TestAuthValidationService(t *testing.T) {
	ctx := context.Background()
	inner := &stubAuthService{}
	svc := NewAuthValidationService(validators.NewAuctionValidator()).Wrap(inner)

	_, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)

	_, err = svc.Login(ctx, models.Credentials{Password: "pw"})
	assert.ErrorIs(t, err, validators.ErrEmptyUsername)
	assert.False(t, inner.called)

	_, err = svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, inner.called)
}

func TestAuctionValidationService(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid create is rejected", func(t *testing.T) {
		inner := &stubAuctionService{}
		svc := NewAuctionValidationService(validators.NewAuctionValidator()).Wrap(inner)

		_, err := svc.CreateAuctionItem(ctx, models.AuctionItemCreate{
			Title: "Lamp", StartingBid: decimal.Zero, EndDate: time.Now().Add(time.Hour), CreatedBy: 1,
		})

		require.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrNonPositiveStartingBid)
		assert.False(t, inner.called)
	})

	t.Run("valid create passes through", func(t *testing.T) {
		inner := &stubAuctionService{}
		svc := NewAuctionValidationService(validators.NewAuctionValidator()).Wrap(inner)

		_, err := svc.CreateAuctionItem(ctx, models.AuctionItemCreate{
			Title: "Lamp", StartingBid: decimal.NewFromInt(1), EndDate: time.Now().Add(time.Hour), CreatedBy: 1,
		})

		require.NoError(t, err)
		assert.True(t, inner.called)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		inner := &stubAuctionService{}
		svc := NewAuctionValidationService(validators.NewAuctionValidator()).Wrap(inner)

		_, err := svc.UpdateAuctionItem(ctx, models.AuctionItemUpdate{ID: 1, CallerID: 1})

		assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
		assert.False(t, inner.called)
	})

	t.Run("delete is not validated", func(t *testing.T) {
		inner := &stubAuctionService{}
		svc := NewAuctionValidationService(validators.NewAuctionValidator()).Wrap(inner)

		require.NoError(t, svc.DeleteAuctionItem(ctx, 1, 1))
		assert.True(t, inner.called)
	})
}

func TestBidValidationService(t *testing.T) {
	ctx := context.Background()
	inner := &stubBidService{}
	svc := NewBidValidationService(validators.NewAuctionValidator()).Wrap(inner)

	_, err := svc.PlaceBid(ctx, models.BidRequest{UserID: 1, BidAmount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, validators.ErrInvalidAuctionItemID)

	_, err = svc.PlaceBid(ctx, models.BidRequest{AuctionItemID: 1, UserID: 1, BidAmount: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, validators.ErrNonPositiveBidAmount)
	assert.False(t, inner.called)

	placement, err := svc.PlaceBid(ctx, models.BidRequest{AuctionItemID: 1, UserID: 1, BidAmount: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.True(t, placement.Created)
}
