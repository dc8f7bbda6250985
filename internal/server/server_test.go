// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-auction/internal/config"
	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestNewServer(t *testing.T) {
	tests := []struct {
		name    string
		handler http.Handler
		cfg     config.Server
		wantErr error
	}{
		{name: "valid", handler: okHandler, cfg: config.Server{HTTPAddress: "127.0.0.1:0"}},
		{name: "missing address", handler: okHandler, cfg: config.Server{}, wantErr: errNoHTTPAddress},
		{name: "missing handler", handler: nil, cfg: config.Server{HTTPAddress: ":8080"}, wantErr: errNoHandler},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, err := NewServer(tc.handler, tc.cfg, logger.Nop())

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

func TestNewHTTPServer_AppliesRequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	srv := newHTTPServer(slow, config.Server{HTTPAddress: ":0", RequestTimeout: 20 * time.Millisecond}, logger.Nop())

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestNewHTTPServer_NoTimeoutLeavesHandler(t *testing.T) {
	srv := newHTTPServer(okHandler, config.Server{HTTPAddress: ":0"}, logger.Nop())

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, readHeaderTimeout, srv.server.ReadHeaderTimeout)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	srv, err := NewServer(okHandler, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.(*server).run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
