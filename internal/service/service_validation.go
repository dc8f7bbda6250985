// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/MKhiriev/go-auction/internal/validators"
	"github.com/MKhiriev/go-auction/models"
)

// invalid wraps a validation failure so that callers can match both
// ErrInvalidDataProvided and the specific validators error.
func invalid(ctx context.Context, funcName string, err error) error {
	logger.FromContext(ctx).Warn().Err(err).Str("func", funcName).Msg("validation failed")
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

// AuthValidationService validates credentials before they reach the wrapped
// AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, invalid(ctx, "*AuthValidationService.RegisterUser", err)
	}

	return v.inner.RegisterUser(ctx, credentials)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, invalid(ctx, "*AuthValidationService.Login", err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// AuctionValidationService validates listing create and update requests.
type AuctionValidationService struct {
	inner     AuctionService
	validator validators.Validator
}

func NewAuctionValidationService(validator validators.Validator) AuctionServiceWrapper {
	return &AuctionValidationService{validator: validator}
}

func (v *AuctionValidationService) CreateAuctionItem(ctx context.Context, item models.AuctionItemCreate) (models.AuctionItem, error) {
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.AuctionItem{}, invalid(ctx, "*AuctionValidationService.CreateAuctionItem", err)
	}

	return v.inner.CreateAuctionItem(ctx, item)
}

func (v *AuctionValidationService) ListAuctionItems(ctx context.Context) ([]models.AuctionItem, error) {
	return v.inner.ListAuctionItems(ctx)
}

func (v *AuctionValidationService) GetAuctionItem(ctx context.Context, itemID int64) (models.AuctionItem, error) {
	return v.inner.GetAuctionItem(ctx, itemID)
}

func (v *AuctionValidationService) ListAuctionItemsByOwner(ctx context.Context, ownerID int64) ([]models.AuctionItem, error) {
	return v.inner.ListAuctionItemsByOwner(ctx, ownerID)
}

func (v *AuctionValidationService) UpdateAuctionItem(ctx context.Context, update models.AuctionItemUpdate) (models.AuctionItem, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.AuctionItem{}, invalid(ctx, "*AuctionValidationService.UpdateAuctionItem", err)
	}

	return v.inner.UpdateAuctionItem(ctx, update)
}

func (v *AuctionValidationService) DeleteAuctionItem(ctx context.Context, itemID, callerID int64) error {
	return v.inner.DeleteAuctionItem(ctx, itemID, callerID)
}

func (v *AuctionValidationService) Wrap(wrapped AuctionService) AuctionService {
	v.inner = wrapped
	return v
}

// BidValidationService validates bids before any lookup is made, so a
// malformed bid is rejected even for an unknown item.
type BidValidationService struct {
	inner     BidService
	validator validators.Validator
}

func NewBidValidationService(validator validators.Validator) BidServiceWrapper {
	return &BidValidationService{validator: validator}
}

func (v *BidValidationService) PlaceBid(ctx context.Context, bid models.BidRequest) (models.BidPlacement, error) {
	if err := v.validator.Validate(ctx, bid); err != nil {
		return models.BidPlacement{}, invalid(ctx, "*BidValidationService.PlaceBid", err)
	}

	return v.inner.PlaceBid(ctx, bid)
}

func (v *BidValidationService) GetBidHistory(ctx context.Context, itemID int64) ([]models.BidWithBidder, error) {
	return v.inner.GetBidHistory(ctx, itemID)
}

func (v *BidValidationService) GetBidsByUser(ctx context.Context, userID int64) ([]models.UserBid, error) {
	return v.inner.GetBidsByUser(ctx, userID)
}

func (v *BidValidationService) Wrap(wrapped BidService) BidService {
	v.inner = wrapped
	return v
}
