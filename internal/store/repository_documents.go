// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-store/internal/logger"
)

// documentRepository is the PostgreSQL-backed [DocumentRepository]. Bodies
// arrive already encrypted; the repository never inspects them.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] on top of an
// open, migrated PostgreSQL connection.
func NewDocumentRepository(db *DB, log *logger.Logger) DocumentRepository {
	return &documentRepository{
		DB:     db,
		logger: log,
	}
}

// SaveDocument upserts the document. Transient PostgreSQL failures are
// retried.
func (r *documentRepository) SaveDocument(ctx context.Context, userID, name, body string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertDocumentQuery(userID, name, body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.SaveDocument").
			Str("user_id", userID).
			Str("document", name).
			Msg("failed to save document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// LoadDocument returns the stored body or [ErrDocumentNotFound].
func (r *documentRepository) LoadDocument(ctx context.Context, userID, name string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentQuery(userID, name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var body string
	err = r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&body)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.LoadDocument").
			Str("user_id", userID).
			Str("document", name).
			Msg("failed to load document")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return body, nil
}

func (r *documentRepository) Close() error {
	return r.DB.Close()
}
