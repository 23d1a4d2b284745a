package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	secureEntriesTable       = "secure_entries"
	integrationDocumentTable = "integration_documents"
)

var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func buildSelectEntryQuery(name string) (string, []any, error) {
	return sqliteBuilder.
		Select("value").
		From(secureEntriesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildUpsertEntryQuery(name, value string) (string, []any, error) {
	return sqliteBuilder.
		Insert(secureEntriesTable).
		Columns("name", "value", "updated_at").
		Values(name, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteEntryQuery(name string) (string, []any, error) {
	return sqliteBuilder.
		Delete(secureEntriesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildSelectDocumentQuery(userID, name string) (string, []any, error) {
	return postgresBuilder.
		Select("body").
		From(integrationDocumentTable).
		Where(sq.Eq{"user_id": userID, "name": name}).
		ToSql()
}

func buildUpsertDocumentQuery(userID, name, body string) (string, []any, error) {
	return postgresBuilder.
		Insert(integrationDocumentTable).
		Columns("user_id", "name", "body", "updated_at").
		Values(userID, name, body, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (user_id, name) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at").
		ToSql()
}
