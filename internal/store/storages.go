package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-store/internal/config"
	"github.com/MKhiriev/go-secure-store/internal/logger"
)

// NewStorage builds the [KeyValueStorage] selected by cfg.Kind. SQLite
// storages are migrated before being returned.
func NewStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (KeyValueStorage, error) {
	switch cfg.Kind {
	case config.StorageKindMemory:
		return NewMemoryStorage(), nil
	case config.StorageKindFile:
		return NewFileStorage(cfg.Path)
	case config.StorageKindSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Path, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			log.Err(err).Str("func", "NewStorage").Msg("error migrating sqlite storage")
			return nil, err
		}
		return NewSQLiteStorage(db, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageKind, cfg.Kind)
	}
}

// NewDocuments connects to the remote document store and migrates it. It
// returns (nil, nil) when cfg.DSN is empty.
func NewDocuments(ctx context.Context, cfg config.Remote, log *logger.Logger) (DocumentRepository, error) {
	if cfg.DSN == "" {
		return nil, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DSN, log)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "NewDocuments").Msg("error migrating remote document store")
		return nil, err
	}

	return NewDocumentRepository(db, log), nil
}
