// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_entries"
	kvColumnKey   = "entry_key"
	kvColumnValue = "entry_value"
	kvColumnTime  = "updated_at"
)

// SQLite accepts "?" placeholders, squirrel's default.
func buildGetEntryQuery(key string) (string, []any, error) {
	return sq.Select(kvColumnValue).
		From(kvTable).
		Where(sq.Eq{kvColumnKey: key}).
		ToSql()
}

func buildUpsertEntryQuery(key, value string, at time.Time) (string, []any, error) {
	return sq.Insert(kvTable).
		Columns(kvColumnKey, kvColumnValue, kvColumnTime).
		Values(key, value, at.UTC()).
		Suffix("ON CONFLICT(" + kvColumnKey + ") DO UPDATE SET " +
			kvColumnValue + " = excluded." + kvColumnValue + ", " +
			kvColumnTime + " = excluded." + kvColumnTime).
		ToSql()
}

func buildDeleteEntriesQuery(keys []string) (string, []any, error) {
	return sq.Delete(kvTable).
		Where(sq.Eq{kvColumnKey: keys}).
		ToSql()
}
