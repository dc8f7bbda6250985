// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auction/internal/service"
	"github.com/MKhiriev/go-auction/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	info := models.VersionResponse{
		Version:      "1.2.0",
		BuildVersion: "v1.2.0",
		BuildDate:    "2026-01-02",
		BuildCommit:  "abc123",
	}
	h := newTestHandler(t, &service.Services{AppInfoService: &fakeAppInfoService{info: info}})

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, info, got)
}

func TestGetServerVersion_ThroughRouter(t *testing.T) {
	rec := serve(t, newTestHandler(t, nil), http.MethodGet, "/api/version", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"test","buildVersion":"","buildDate":"","buildCommit":""}`, rec.Body.String())
}
