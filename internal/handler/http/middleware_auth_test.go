// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auction/internal/service"
	"github.com/MKhiriev/go-auction/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
		wantUserID  int64
	}{
		{
			name:       "valid bearer token",
			header:     "Bearer " + testToken,
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:       "scheme is case-insensitive",
			header:     "bearer " + testToken,
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:        "missing header",
			header:      "",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:        "token without scheme",
			header:      testToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: utils.ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:        "wrong scheme",
			header:      "Basic dXNlcjpwYXNz",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: utils.ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:        "rejected token",
			header:      "Bearer expired.jwt.token",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: service.ErrTokenIsExpiredOrInvalid.Error(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{AuthService: acceptingAuth(42)})

			var (
				called bool
				gotID  int64
				gotOK  bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotID, gotOK = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				assert.False(t, called, "next handler must not run")
				assert.Equal(t, tc.wantMessage, decodeMessage(t, rec))
				return
			}

			assert.True(t, called)
			assert.True(t, gotOK)
			assert.Equal(t, tc.wantUserID, gotID)
		})
	}
}
