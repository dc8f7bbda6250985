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

func (h *Handler) createAuctionItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, "Handler.createAuctionItem", err)
		return
	}

	var item models.AuctionItemCreate
	if err = utils.ReadJSON(r, &item); err != nil {
		writeError(w, r, "Handler.createAuctionItem", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	item.CreatedBy = userID

	created, err := h.services.AuctionService.CreateAuctionItem(ctx, item)
	if err != nil {
		writeError(w, r, "Handler.createAuctionItem", err)
		return
	}

	log.Info().Int64("auction_item_id", created.ID).Int64("user_id", userID).Msg("auction item created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listAuctionItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.AuctionService.ListAuctionItems(r.Context())
	if err != nil {
		writeError(w, r, "Handler.listAuctionItems", err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getAuctionItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "Handler.getAuctionItem", err)
		return
	}

	item, err := h.services.AuctionService.GetAuctionItem(r.Context(), itemID)
	if err != nil {
		writeError(w, r, "Handler.getAuctionItem", err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) listMyAuctionItems(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, "Handler.listMyAuctionItems", err)
		return
	}

	items, err := h.services.AuctionService.ListAuctionItemsByOwner(r.Context(), userID)
	if err != nil {
		writeError(w, r, "Handler.listMyAuctionItems", err)
		return
	}

	utils.WriteJSON(w, models.AuctionItemsResponse{AuctionItems: items}, http.StatusOK)
}

func (h *Handler) updateAuctionItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, "Handler.updateAuctionItem", err)
		return
	}

	itemID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "Handler.updateAuctionItem", err)
		return
	}

	var update models.AuctionItemUpdate
	if err = utils.ReadJSON(r, &update); err != nil {
		writeError(w, r, "Handler.updateAuctionItem", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	update.ID = itemID
	update.CallerID = userID

	updated, err := h.services.AuctionService.UpdateAuctionItem(ctx, update)
	if err != nil {
		writeError(w, r, "Handler.updateAuctionItem", err)
		return
	}

	log.Info().Int64("auction_item_id", itemID).Int64("user_id", userID).Msg("auction item updated")
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteAuctionItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, "Handler.deleteAuctionItem", err)
		return
	}

	itemID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "Handler.deleteAuctionItem", err)
		return
	}

	if err = h.services.AuctionService.DeleteAuctionItem(ctx, itemID, userID); err != nil {
		writeError(w, r, "Handler.deleteAuctionItem", err)
		return
	}

	log.Info().Int64("auction_item_id", itemID).Int64("user_id", userID).Msg("auction item deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: "auction item deleted"}, http.StatusOK)
}

func (h *Handler) getWinner(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "Handler.getWinner", err)
		return
	}

	result, err := h.services.ResolutionService.GetWinner(r.Context(), itemID)
	if err != nil {
		writeError(w, r, "Handler.getWinner", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) listWonAuctions(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, "Handler.listWonAuctions", err)
		return
	}

	won, err := h.services.ResolutionService.GetAuctionsWonByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, "Handler.listWonAuctions", err)
		return
	}

	utils.WriteJSON(w, models.WonAuctionsResponse{WonAuctions: won}, http.StatusOK)
}
