package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-school-link/internal/config"
	"github.com/MKhiriev/go-school-link/internal/crypto"
	"github.com/MKhiriev/go-school-link/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// KeyValueStorage is the Persistent Local Store backend in use.
	KeyValueStorage KeyValueStorage

	// SnapshotRepository persists the session projection on top of
	// KeyValueStorage.
	SnapshotRepository SnapshotRepository
}

// NewClientStorages initialises the client storage layer. It picks the
// backend as follows:
//  1. Redis when cfg.Redis.Address is set;
//  2. an in-process map when cfg.DB.DSN is [MemoryDSN];
//  3. otherwise SQLite at cfg.DB.DSN, creating the file and running the
//     migrations.
//
// A non-empty cfg.SnapshotKey seals every persisted blob.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	kv, err := newKeyValueStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var sealer crypto.SnapshotSealer
	if cfg.SnapshotKey != "" {
		if sealer, err = crypto.NewSnapshotSealer(cfg.SnapshotKey); err != nil {
			_ = kv.Close()
			return nil, fmt.Errorf("snapshot sealer: %w", err)
		}
	}

	return &ClientStorages{
		KeyValueStorage:    kv,
		SnapshotRepository: NewSnapshotRepository(kv, sealer, logger),
	}, nil
}

func newKeyValueStorage(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (KeyValueStorage, error) {
	switch {
	case cfg.UseRedis():
		kv, err := NewConnectRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		return kv, nil

	case cfg.DB.DSN == MemoryDSN:
		return NewMemoryKeyValueStorage(), nil

	default:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewKeyValueRepository(db, logger), nil
	}
}

// Close releases the storage backend.
func (s *ClientStorages) Close() error {
	return s.KeyValueStorage.Close()
}
