package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-school-link/internal/config"
	"github.com/MKhiriev/go-school-link/internal/logger"
)

const redisPingTimeout = 5 * time.Second

type redisKeyValueStorage struct {
	client *redis.Client
	prefix string
	logger *logger.Logger
}

// NewConnectRedis opens and pings a Redis connection and returns it as a
// [KeyValueStorage]. Every key is namespaced with cfg.KeyPrefix.
func NewConnectRedis(ctx context.Context, cfg config.ClientRedis, log *logger.Logger) (KeyValueStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Str("address", cfg.Address).Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Debug().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return newRedisKeyValueStorage(client, cfg.KeyPrefix, log), nil
}

func newRedisKeyValueStorage(client *redis.Client, prefix string, log *logger.Logger) *redisKeyValueStorage {
	return &redisKeyValueStorage{client: client, prefix: prefix, logger: log}
}

func (r *redisKeyValueStorage) key(key string) string {
	return r.prefix + key
}

func (r *redisKeyValueStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "redisKeyValueStorage.Get").Str("key", key).Msg("redis get failed")
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

func (r *redisKeyValueStorage) Set(ctx context.Context, key, value string) error {
	// no expiry: the snapshot lives until logout
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		r.logger.Err(err).Str("func", "redisKeyValueStorage.Set").Str("key", key).Msg("redis set failed")
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *redisKeyValueStorage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	namespaced := make([]string, len(keys))
	for i, key := range keys {
		namespaced[i] = r.key(key)
	}

	if err := r.client.Del(ctx, namespaced...).Err(); err != nil {
		r.logger.Err(err).Str("func", "redisKeyValueStorage.Remove").Strs("keys", keys).Msg("redis del failed")
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *redisKeyValueStorage) Close() error {
	return r.client.Close()
}
