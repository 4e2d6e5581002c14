package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-school-link/internal/logger"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKeyValueRepository returns a SQLite-backed [KeyValueStorage] over the
// kv_entries table created by the migrations.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueStorage {
	return &kvRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(key)
	if err != nil {
		log.Err(err).Str("func", "kvRepository.Get").Str("key", key).Msg("failed to build query")
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "kvRepository.Get").Str("key", key).Msg("failed to query entry")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *kvRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertEntryQuery(key, value, r.now())
	if err != nil {
		log.Err(err).Str("func", "kvRepository.Set").Str("key", key).Msg("failed to build query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "kvRepository.Set").Str("key", key).Msg("failed to upsert entry")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (r *kvRepository) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntriesQuery(keys)
	if err != nil {
		log.Err(err).Str("func", "kvRepository.Remove").Strs("keys", keys).Msg("failed to build query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "kvRepository.Remove").Strs("keys", keys).Msg("failed to delete entries")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (r *kvRepository) Close() error {
	return r.DB.Close()
}
