// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every API route and the shared middleware
// chain.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/auctions", h.listAuctionItems)
		r.Get("/api/auctions/{id}", h.getAuctionItem)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auctions", h.createAuctionItem)
		r.Post("/api/auctions/user", h.listMyAuctionItems)
		r.Post("/api/auctions/won", h.listWonAuctions)
		r.Get("/api/auctions/winner/{id}", h.getWinner)
		r.Put("/api/auctions/{id}", h.updateAuctionItem)
		r.Delete("/api/auctions/{id}", h.deleteAuctionItem)

		r.Post("/api/bids", h.placeBid)
		r.Post("/api/bids/user", h.listMyBids)
		r.Get("/api/bids/{auctionItemId}", h.getBidHistory)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
