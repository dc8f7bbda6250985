// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/MKhiriev/go-auction/internal/service"
	"github.com/MKhiriev/go-auction/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case.
type fakeAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return f.registerUserFn(ctx, credentials)
}

func (f *fakeAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return f.loginFn(ctx, credentials)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

type fakeAppInfoService struct {
	info models.VersionResponse
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.info.Version
}

func (f *fakeAppInfoService) GetVersionInfo(_ context.Context) models.VersionResponse {
	return f.info
}

type fakeAuctionService struct {
	createFn      func(ctx context.Context, item models.AuctionItemCreate) (models.AuctionItem, error)
	listFn        func(ctx context.Context) ([]models.AuctionItem, error)
	getFn         func(ctx context.Context, itemID int64) (models.AuctionItem, error)
	listByOwnerFn func(ctx context.Context, ownerID int64) ([]models.AuctionItem, error)
	updateFn      func(ctx context.Context, update models.AuctionItemUpdate) (models.AuctionItem, error)
	deleteFn      func(ctx context.Context, itemID, callerID int64) error
}

func (f *fakeAuctionService) CreateAuctionItem(ctx context.Context, item models.AuctionItemCreate) (models.AuctionItem, error) {
	return f.createFn(ctx, item)
}

func (f *fakeAuctionService) ListAuctionItems(ctx context.Context) ([]models.AuctionItem, error) {
	return f.listFn(ctx)
}

func (f *fakeAuctionService) GetAuctionItem(ctx context.Context, itemID int64) (models.AuctionItem, error) {
	return f.getFn(ctx, itemID)
}

func (f *fakeAuctionService) ListAuctionItemsByOwner(ctx context.Context, ownerID int64) ([]models.AuctionItem, error) {
	return f.listByOwnerFn(ctx, ownerID)
}

func (f *fakeAuctionService) UpdateAuctionItem(ctx context.Context, update models.AuctionItemUpdate) (models.AuctionItem, error) {
	return f.updateFn(ctx, update)
}

func (f *fakeAuctionService) DeleteAuctionItem(ctx context.Context, itemID, callerID int64) error {
	return f.deleteFn(ctx, itemID, callerID)
}

type fakeBidService struct {
	placeBidFn      func(ctx context.Context, bid models.BidRequest) (models.BidPlacement, error)
	getBidHistoryFn func(ctx context.Context, itemID int64) ([]models.BidWithBidder, error)
	getBidsByUserFn func(ctx context.Context, userID int64) ([]models.UserBid, error)
}

func (f *fakeBidService) PlaceBid(ctx context.Context, bid models.BidRequest) (models.BidPlacement, error) {
	return f.placeBidFn(ctx, bid)
}

func (f *fakeBidService) GetBidHistory(ctx context.Context, itemID int64) ([]models.BidWithBidder, error) {
	return f.getBidHistoryFn(ctx, itemID)
}

func (f *fakeBidService) GetBidsByUser(ctx context.Context, userID int64) ([]models.UserBid, error) {
	return f.getBidsByUserFn(ctx, userID)
}

type fakeResolutionService struct {
	getWinnerFn func(ctx context.Context, itemID int64) (models.WinnerResult, error)
	getWonFn    func(ctx context.Context, userID int64) ([]models.WonAuction, error)
}

func (f *fakeResolutionService) GetWinner(ctx context.Context, itemID int64) (models.WinnerResult, error) {
	return f.getWinnerFn(ctx, itemID)
}

func (f *fakeResolutionService) GetAuctionsWonByUser(ctx context.Context, userID int64) ([]models.WonAuction, error) {
	return f.getWonFn(ctx, userID)
}

var (
	_ service.AuthService       = (*fakeAuthService)(nil)
	_ service.AppInfoService    = (*fakeAppInfoService)(nil)
	_ service.AuctionService    = (*fakeAuctionService)(nil)
	_ service.BidService        = (*fakeBidService)(nil)
	_ service.ResolutionService = (*fakeResolutionService)(nil)
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testToken is accepted by the fake auth service built by acceptingAuth.
const testToken = "valid.jwt.token"

// acceptingAuth returns an auth service fake that maps testToken to userID
// and rejects everything else.
func acceptingAuth(userID int64) *fakeAuthService {
	return &fakeAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{SignedString: tokenString, UserID: userID}, nil
		},
	}
}

// newTestHandler builds a Handler with the given services and fills the
// unset ones with empty fakes.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = acceptingAuth(1)
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &fakeAppInfoService{info: models.VersionResponse{Version: "test"}}
	}
	if svcs.AuctionService == nil {
		svcs.AuctionService = &fakeAuctionService{}
	}
	if svcs.BidService == nil {
		svcs.BidService = &fakeBidService{}
	}
	if svcs.ResolutionService == nil {
		svcs.ResolutionService = &fakeResolutionService{}
	}

	return NewHandler(svcs, logger.Nop())
}

// serve runs the request through the full router. A non-empty token is sent
// as a bearer Authorization header.
func serve(t *testing.T, h *Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// decodeMessage decodes a models.MessageResponse body.
func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	return msg.Message
}
