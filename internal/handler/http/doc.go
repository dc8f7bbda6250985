// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the auction server.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: trace ids, access logging, gzip compression, bearer-token
// authentication and the 404-on-wrong-method rule. Every error response is a
// JSON [models.MessageResponse].
package http
