// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auction/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It reads the "Authorization: Bearer <token>" header, verifies the token via
// [service.AuthService.ParseToken] and stores the token's user id in the
// request context with [utils.WithUserID] before delegating to next.
//
// A missing header, a malformed header and an invalid or expired token are all
// rejected with 401 Unauthorized and a JSON message.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, "Handler.auth", ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, "Handler.auth", err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, "Handler.auth", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
