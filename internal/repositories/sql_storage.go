package repositories

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_entries"
	kvKeyColumn   = "key"
	kvValueColumn = "value"
	kvUpdatedAt   = "updated_at"
)

// kvQueries builds the kv_entries statements for a placeholder dialect.
// Postgres and sqlite share the same SQL apart from placeholders.
type kvQueries struct {
	builder sq.StatementBuilderType
}

func newKVQueries(format sq.PlaceholderFormat) kvQueries {
	return kvQueries{builder: sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q kvQueries) get(key string) (string, []interface{}, error) {
	return q.builder.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

func (q kvQueries) upsert(key, value string) (string, []interface{}, error) {
	return q.builder.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (" + kvKeyColumn + ") DO UPDATE SET " +
			kvValueColumn + " = excluded." + kvValueColumn + ", " +
			kvUpdatedAt + " = CURRENT_TIMESTAMP").
		ToSql()
}

func (q kvQueries) remove(key string) (string, []interface{}, error) {
	return q.builder.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

func (q kvQueries) keys() (string, []interface{}, error) {
	return q.builder.
		Select(kvKeyColumn).
		From(kvTable).
		OrderBy(kvKeyColumn + " ASC").
		ToSql()
}
