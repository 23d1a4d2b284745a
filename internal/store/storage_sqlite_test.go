package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-store/internal/config"
	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/migrations"
)

func newTestSQLiteStorage(t *testing.T) (*sqliteStorage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &sqliteStorage{
		DB:     &DB{DB: db, dialect: migrations.DialectSQLite, logger: l},
		logger: l,
	}, mock
}

func TestSQLiteStorage_Get(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM secure_entries WHERE name = ?")).
		WithArgs("openai-api-key").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("enc:v1:a:b"))

	got, err := s.Get(context.Background(), "openai-api-key")
	require.NoError(t, err)
	assert.Equal(t, "enc:v1:a:b", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Get_NotFound(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery("SELECT value FROM secure_entries").
		WithArgs("openai-api-key").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), "openai-api-key")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestSQLiteStorage_Get_QueryError(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery("SELECT value FROM secure_entries").
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Get(context.Background(), "openai-api-key")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLiteStorage_Set(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO secure_entries (name,value,updated_at) VALUES (?,?,CURRENT_TIMESTAMP) ON CONFLICT(name)")).
		WithArgs("openai-api-key", "enc:v1:a:b").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), "openai-api-key", "enc:v1:a:b"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Set_Error(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec("INSERT INTO secure_entries").
		WillReturnError(errors.New("database is locked"))

	assert.ErrorIs(t, s.Set(context.Background(), "k", "v"), ErrExecutingStatement)
}

func TestSQLiteStorage_Delete(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM secure_entries WHERE name = ?")).
		WithArgs("openai-api-key").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background(), "openai-api-key"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewStorage_Kinds(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.Storage
	}{
		{name: "memory", cfg: config.Storage{Kind: config.StorageKindMemory}},
		{name: "file", cfg: config.Storage{Kind: config.StorageKindFile, Path: filepath.Join(dir, "store.json")}},
		{name: "sqlite", cfg: config.Storage{Kind: config.StorageKindSQLite, Path: filepath.Join(dir, "store.db")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStorage(ctx, tt.cfg, logger.Nop())
			require.NoError(t, err)
			defer s.Close()

			require.NoError(t, s.Set(ctx, "anthropic-api-key", "enc:v1:a:b"))
			require.NoError(t, s.Set(ctx, "anthropic-api-key", "enc:v1:c:d"))

			got, err := s.Get(ctx, "anthropic-api-key")
			require.NoError(t, err)
			assert.Equal(t, "enc:v1:c:d", got)

			require.NoError(t, s.Delete(ctx, "anthropic-api-key"))
			_, err = s.Get(ctx, "anthropic-api-key")
			assert.ErrorIs(t, err, ErrEntryNotFound)
		})
	}
}

func TestNewStorage_UnknownKind(t *testing.T) {
	_, err := NewStorage(context.Background(), config.Storage{Kind: "redis"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownStorageKind)
}

func TestNewDocuments_DisabledWithoutDSN(t *testing.T) {
	repo, err := NewDocuments(context.Background(), config.Remote{}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, repo)
}
