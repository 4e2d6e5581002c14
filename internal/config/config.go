// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags and an optional configuration file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log sink.
	App App `envPrefix:"APP_"`

	// Storage holds the Persistent Local Store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the Remote Session API endpoint and timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON (.json) or YAML (.yaml, .yml)
	// configuration file.
	// Env: CONFIG
	FilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the file client logs are appended to. Empty means a "logs"
	// file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// MetricsAddress is the host:port the watch daemon serves /metrics and
	// /healthz on. Empty disables the listener.
	// Env: APP_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// Storage groups the Persistent Local Store settings. Exactly one backend is
// used: Redis when Redis.Address is set, SQLite otherwise.
type Storage struct {
	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the optional Redis backend settings.
	Redis Redis `envPrefix:"REDIS_"`

	// SnapshotKey is an optional passphrase. When set, every persisted
	// session blob is sealed before it reaches the store.
	// Env: STORAGE_SNAPSHOT_KEY
	SnapshotKey string `env:"SNAPSHOT_KEY"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds the Redis connection settings.
type Redis struct {
	// Address is the host:port of the Redis server.
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`

	// Password is the optional AUTH password.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the logical database index.
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`

	// KeyPrefix namespaces every key written by this client.
	// Env: STORAGE_REDIS_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`
}

// Adapter holds the Remote Session API settings.
type Adapter struct {
	// HTTPAddress is the base URL of the Remote Session API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds login and forced refresh calls (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// ReconcileInterval is how often the watch daemon re-checks the active
	// association against the backend.
	// Env: WORKERS_RECONCILE_INTERVAL
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL"`
}

// Default values applied after every other source.
const (
	DefaultHTTPAddress       = "http://localhost:8080"
	DefaultRequestTimeout    = 15 * time.Second
	DefaultReconcileInterval = 5 * time.Minute
	DefaultDSN               = "school-link.db"
	DefaultRedisKeyPrefix    = "school-link:"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Redis: Redis{KeyPrefix: DefaultRedisKeyPrefix},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{ReconcileInterval: DefaultReconcileInterval},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// in priority order (a field set by an earlier source wins):
//  1. Environment variables
//  2. Command-line flags
//  3. Configuration file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withFile().
		withDefaults().
		build()
}
