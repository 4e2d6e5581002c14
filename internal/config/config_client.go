package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogFile is the file client logs are appended to.
	LogFile string
	// MetricsAddress is the watch daemon listener; empty disables it.
	MetricsAddress string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the Remote Session API base URL.
	HTTPAddress string
	// RequestTimeout is the bound applied to login and forced refresh.
	RequestTimeout time.Duration
}

// ClientDB contains local SQLite settings.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientRedis contains the optional Redis backend settings.
type ClientRedis struct {
	Address   string
	Password  string
	DB        int
	KeyPrefix string
}

// ClientStorage groups Persistent Local Store settings.
type ClientStorage struct {
	// DB holds local SQLite settings.
	DB ClientDB
	// Redis holds Redis settings; a non-empty Address selects this backend.
	Redis ClientRedis
	// SnapshotKey seals persisted session blobs when non-empty.
	SnapshotKey string
}

// UseRedis reports whether the Redis backend is configured.
func (s ClientStorage) UseRedis() bool {
	return s.Redis.Address != ""
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// ReconcileInterval defines how often background reconciliation runs.
	ReconcileInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:        cfg.App.LogFile,
			MetricsAddress: cfg.App.MetricsAddress,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
			Redis: ClientRedis{
				Address:   cfg.Storage.Redis.Address,
				Password:  cfg.Storage.Redis.Password,
				DB:        cfg.Storage.Redis.DB,
				KeyPrefix: cfg.Storage.Redis.KeyPrefix,
			},
			SnapshotKey: cfg.Storage.SnapshotKey,
		},
		Workers: ClientWorkers{ReconcileInterval: cfg.Workers.ReconcileInterval},
	}
}
