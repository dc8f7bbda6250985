// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the JSON body of error responses and of operations that
// only report an outcome (e.g. deletion).
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by the register and login endpoints in addition
// to the Authorization response header.
type TokenResponse struct {
	Token string `json:"token"`
}

// AuctionItemsResponse wraps the listings owned by the caller.
type AuctionItemsResponse struct {
	AuctionItems []AuctionItem `json:"auctionItems"`
}

// WonAuctionsResponse wraps the auctions won by the caller.
type WonAuctionsResponse struct {
	WonAuctions []WonAuction `json:"wonAuctions"`
}

// UserBidsResponse wraps the bids placed by the caller.
type UserBidsResponse struct {
	Bids []UserBid `json:"bids"`
}

// VersionResponse is the body of the version endpoint.
type VersionResponse struct {
	Version      string `json:"version"`
	BuildVersion string `json:"buildVersion"`
	BuildDate    string `json:"buildDate"`
	BuildCommit  string `json:"buildCommit"`
}
