package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-store/internal/logger"
)

// sqliteStorage is the SQLite-backed [KeyValueStorage] working on the
// secure_entries table.
type sqliteStorage struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteStorage constructs a [KeyValueStorage] on top of an open,
// migrated SQLite connection.
func NewSQLiteStorage(db *DB, log *logger.Logger) KeyValueStorage {
	return &sqliteStorage{
		DB:     db,
		logger: log,
	}
}

func (s *sqliteStorage) Get(ctx context.Context, name string) (string, error) {
	query, args, err := buildSelectEntryQuery(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrEntryNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStorage.Get").
			Str("entry", name).
			Msg("failed to select entry")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteStorage) Set(ctx context.Context, name, value string) error {
	query, args, err := buildUpsertEntryQuery(name, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStorage.Set").
			Str("entry", name).
			Msg("failed to upsert entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteStorage) Delete(ctx context.Context, name string) error {
	query, args, err := buildDeleteEntryQuery(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStorage.Delete").
			Str("entry", name).
			Msg("failed to delete entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteStorage) Close() error {
	return s.DB.Close()
}
