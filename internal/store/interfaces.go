// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is the persistent string-keyed store that holds sensitive
// entries at rest. Values are opaque to the storage: encrypted records and
// legacy plaintext are stored the same way.
type KeyValueStorage interface {
	// Get returns the stored value or ErrEntryNotFound.
	Get(ctx context.Context, name string) (string, error)
	// Set inserts or replaces the value stored under name.
	Set(ctx context.Context, name, value string) error
	// Delete removes name. Deleting an absent entry is not an error.
	Delete(ctx context.Context, name string) error
	// Close releases the underlying resources.
	Close() error
}

// DocumentRepository persists pre-encrypted documents in the remote
// document store, keyed by user and document name.
type DocumentRepository interface {
	// SaveDocument inserts or replaces the document body.
	SaveDocument(ctx context.Context, userID, name, body string) error
	// LoadDocument returns the stored body or ErrDocumentNotFound.
	LoadDocument(ctx context.Context, userID, name string) (string, error)
	// Close releases the underlying connection pool.
	Close() error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
