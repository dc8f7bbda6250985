// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/MKhiriev/go-auction/internal/utils"
	"github.com/MKhiriev/go-auction/models"
)

func (h *Handler) placeBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, "Handler.placeBid", err)
		return
	}

	var bid models.BidRequest
	if err = utils.ReadJSON(r, &bid); err != nil {
		writeError(w, r, "Handler.placeBid", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	bid.UserID = userID

	placement, err := h.services.BidService.PlaceBid(ctx, bid)
	if err != nil {
		writeError(w, r, "Handler.placeBid", err)
		return
	}

	status := http.StatusOK
	if placement.Created {
		status = http.StatusCreated
	}

	log.Info().
		Int64("auction_item_id", bid.AuctionItemID).
		Int64("user_id", userID).
		Str("amount", placement.Bid.BidAmount.String()).
		Bool("created", placement.Created).
		Msg("bid placed")
	utils.WriteJSON(w, placement.Bid, status)
}

func (h *Handler) getBidHistory(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "auctionItemId")
	if err != nil {
		writeError(w, r, "Handler.getBidHistory", err)
		return
	}

	bids, err := h.services.BidService.GetBidHistory(r.Context(), itemID)
	if err != nil {
		writeError(w, r, "Handler.getBidHistory", err)
		return
	}

	utils.WriteJSON(w, bids, http.StatusOK)
}

func (h *Handler) listMyBids(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, "Handler.listMyBids", err)
		return
	}

	bids, err := h.services.BidService.GetBidsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, "Handler.listMyBids", err)
		return
	}

	utils.WriteJSON(w, models.UserBidsResponse{Bids: bids}, http.StatusOK)
}
