// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/MKhiriev/go-auction/internal/service"
	"github.com/MKhiriev/go-auction/internal/store"
	"github.com/MKhiriev/go-auction/internal/utils"
	"github.com/MKhiriev/go-auction/internal/validators"
	"github.com/MKhiriev/go-auction/models"
)

// errorStatus binds a sentinel error to the status code it is reported with.
// The sentinel's text is the public message.
type errorStatus struct {
	target error
	status int
}

// errorStatuses is searched in order, so the most specific sentinels come
// first: a validation error is also wrapped in service.ErrInvalidDataProvided.
var errorStatuses = []errorStatus{
	{validators.ErrEmptyUsername, http.StatusBadRequest},
	{validators.ErrEmptyPassword, http.StatusBadRequest},
	{validators.ErrInvalidUserID, http.StatusBadRequest},
	{validators.ErrInvalidAuctionItemID, http.StatusBadRequest},
	{validators.ErrEmptyTitle, http.StatusBadRequest},
	{validators.ErrNonPositiveStartingBid, http.StatusBadRequest},
	{validators.ErrStartingBidPrecision, http.StatusBadRequest},
	{validators.ErrStartingBidTooLarge, http.StatusBadRequest},
	{validators.ErrMissingEndDate, http.StatusBadRequest},
	{validators.ErrEndDateNotInFuture, http.StatusBadRequest},
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest},
	{validators.ErrNonPositiveBidAmount, http.StatusBadRequest},
	{validators.ErrBidAmountPrecision, http.StatusBadRequest},
	{validators.ErrBidAmountTooLarge, http.StatusBadRequest},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidID, http.StatusBadRequest},
	{ErrInvalidGzipBody, http.StatusBadRequest},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoCallerID, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrAuctionEnded, http.StatusBadRequest},
	{service.ErrBidTooLow, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{store.ErrBidNotHigher, http.StatusBadRequest},
	{store.ErrUsernameAlreadyExists, http.StatusConflict},
	{store.ErrAuctionItemNotFound, http.StatusNotFound},
	{store.ErrNotAuctionItemOwner, http.StatusForbidden},
	{store.ErrNoUserWasFound, http.StatusNotFound},
}

// statusFromError returns the status code and public message for err.
// Anything unmapped is an internal error whose details stay in the logs.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err with the request logger and responds with the mapped
// status and a JSON message.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
