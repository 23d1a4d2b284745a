// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// secure store HTTP handlers.
//
// Msg* constants are written into HTTP response bodies when the underlying
// error must not be shown to the caller.
package app

const (
	// MsgInternalServerError replaces storage and other unexpected failures
	// so file paths and driver messages never reach the client.
	MsgInternalServerError = "internal server error"

	// MsgRouteNotFound is returned for unknown routes and for unsupported
	// methods on known ones.
	MsgRouteNotFound = "not found"

	// MsgUnauthorized is returned when a handler behind the auth middleware
	// finds no user identifier in the request context.
	MsgUnauthorized = "unauthorized"
)
