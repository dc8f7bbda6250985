// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// notAvailable stands in for build values the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags at link time.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo returns build info where every empty value reads "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.buildVersion) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.buildDate) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.buildCommit) }

// VersionResponse combines the configured application version with the
// build metadata.
func (a AppBuildInfo) VersionResponse(version string) VersionResponse {
	return VersionResponse{
		Version:      version,
		BuildVersion: a.BuildVersion(),
		BuildDate:    a.BuildDate(),
		BuildCommit:  a.BuildCommit(),
	}
}

func orNotAvailable(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}
