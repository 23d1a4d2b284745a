// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secure-store/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SecureStore is the public store API. Reads are served synchronously from
// the session cache; writes update the cache immediately and persist the
// encrypted form in the background.
type SecureStore interface {
	// Initialize opens a fresh session for userID, replacing any open one,
	// and loads every sensitive entry into the cache, migrating legacy
	// plaintext entries to the encrypted form. Per-entry failures are
	// logged and skipped; only a done ctx is returned as an error.
	Initialize(ctx context.Context, userID string) error
	// Clear closes the session. Persistent storage is left untouched.
	Clear()
	// Get returns the cached value, or "" when absent or not initialized.
	Get(name models.EntryName) string
	// Set updates the cache and schedules persistence. A blank value
	// removes the entry.
	Set(ctx context.Context, name models.EntryName, value string)
	// Remove deletes the entry from the cache and persistent storage.
	Remove(ctx context.Context, name models.EntryName)
	// IsInitialized reports whether a session is open.
	IsInitialized() bool
	// EncryptValue seals plaintext with the session key and returns the
	// serialized record.
	EncryptValue(ctx context.Context, plaintext string) (string, error)
	// DecryptValue opens a serialized record with the session key. Input
	// without the record marker is returned unchanged.
	DecryptValue(ctx context.Context, record string) (string, error)
	// Flush waits until every scheduled write has reached storage.
	Flush(ctx context.Context) error
	// Status describes the open session.
	Status() models.SessionStatus
}

// SessionService ties the secure store to the sign-in lifecycle driven by
// the authentication system.
type SessionService interface {
	// Open initializes the store for userID, pulls the remote integration
	// settings and starts the periodic push when a remote store is
	// configured.
	Open(ctx context.Context, userID string) error
	// Close stops the periodic push, flushes pending writes and clears the
	// store.
	Close(ctx context.Context) error
}

// RemoteSettingsService exchanges the integration settings with the remote
// document store. Values leave the process encrypted only.
type RemoteSettingsService interface {
	Push(ctx context.Context, userID string) error
	Pull(ctx context.Context, userID string) error
}

// RemoteSyncJob pushes the integration settings on a ticker.
type RemoteSyncJob interface {
	Start(ctx context.Context, userID string, interval time.Duration)
	Stop(ctx context.Context) error
}
