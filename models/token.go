// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a verified bearer token. It doubles as the claims type passed to
// jwt.ParseWithClaims, so the registered claims are filled in while parsing.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form sent to clients.
	SignedString string `json:"-"`

	// UserID is the numeric "sub" claim of a verified token.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as the user id.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting user id from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject %q is not a user id: %w", subject, err)
	}

	return userID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
