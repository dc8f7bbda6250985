// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-auction/internal/config"
	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/MKhiriev/go-auction/internal/store"
	"github.com/MKhiriev/go-auction/internal/validators"
	"github.com/MKhiriev/go-auction/models"
)

// Services groups every service the HTTP layer depends on. Services that
// accept user input are wrapped with their validation decorators.
type Services struct {
	AuthService       AuthService
	AppInfoService    AppInfoService
	AuctionService    AuctionService
	BidService        BidService
	ResolutionService ResolutionService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewAuctionValidator()

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		AppInfoService: appInfoService,
		AuctionService: NewAuctionValidationService(validator).
			Wrap(NewAuctionService(storages.AuctionRepository, storages.WinnerCache, logger)),
		BidService: NewBidValidationService(validator).
			Wrap(NewBidService(storages.AuctionRepository, storages.BidRepository, logger)),
		ResolutionService: NewResolutionService(storages, logger),
	}, nil
}
