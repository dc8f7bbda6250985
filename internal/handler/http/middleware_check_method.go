// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auction/internal/utils"
	"github.com/MKhiriev/go-auction/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant to be registered with
// [chi.Mux.MethodNotAllowed].
//
// Instead of chi's default 405 it answers 404 whenever the requested method is
// not registered for the route whose pattern equals the request path. Routes
// with URL parameters never match a concrete path, so any method mismatch on
// them is a 404 as well. When the method is registered the request goes back
// through the router.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// notFound answers unknown paths with a JSON 404.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
