// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-auction/internal/config"
	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/MKhiriev/go-auction/models"
)

// appInfoService reports the running server's version and build metadata.
type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns ErrVersionIsNotSpecified when cfg carries no
// version.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetVersionInfo combines the configured version with the linker-injected
// build metadata. Missing build values are reported as "N/A".
func (s *appInfoService) GetVersionInfo(ctx context.Context) models.VersionResponse {
	return s.buildInfo.VersionResponse(s.appVersion)
}
