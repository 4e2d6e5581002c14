package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-school-link/internal/crypto"
	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/models"
)

// Persisted snapshot keys.
const (
	KeyToken             = "session.token"
	KeyUser              = "session.user"
	KeyAssociations      = "session.associations"
	KeyActiveAssociation = "session.active_association"
)

// SnapshotKeys lists every key a snapshot may occupy.
func SnapshotKeys() []string {
	return []string{KeyToken, KeyUser, KeyAssociations, KeyActiveAssociation}
}

type snapshotRepository struct {
	kv     KeyValueStorage
	sealer crypto.SnapshotSealer
	logger *logger.Logger
}

// NewSnapshotRepository returns a [SnapshotRepository] over kv. When sealer
// is non-nil every blob is sealed before it is written.
func NewSnapshotRepository(kv KeyValueStorage, sealer crypto.SnapshotSealer, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{kv: kv, sealer: sealer, logger: logger}
}

// Load implements [SnapshotRepository].
//
// Token and user are mandatory. A missing association list stays nil
// ("never fetched") which is different from a stored empty list.
func (r *snapshotRepository) Load(ctx context.Context) (models.Snapshot, error) {
	token, err := r.read(ctx, KeyToken)
	if errors.Is(err, ErrKeyNotFound) {
		// a user without a token is a leftover partial write
		if _, userErr := r.kv.Get(ctx, KeyUser); userErr == nil {
			return models.Snapshot{}, fmt.Errorf("%w: user without token", ErrSnapshotCorrupt)
		}
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return models.Snapshot{}, err
	}
	if token == "" {
		return models.Snapshot{}, fmt.Errorf("%w: empty token", ErrSnapshotCorrupt)
	}

	snapshot := models.Snapshot{Token: token}

	var user models.User
	found, err := r.readJSON(ctx, KeyUser, &user)
	if err != nil {
		return models.Snapshot{}, err
	}
	if !found || user.ID == "" {
		return models.Snapshot{}, fmt.Errorf("%w: token without user", ErrSnapshotCorrupt)
	}
	snapshot.User = &user

	var associations []models.Association
	if _, err = r.readJSON(ctx, KeyAssociations, &associations); err != nil {
		return models.Snapshot{}, err
	}
	snapshot.Associations = associations

	var active *models.Association
	if _, err = r.readJSON(ctx, KeyActiveAssociation, &active); err != nil {
		return models.Snapshot{}, err
	}
	if active != nil && active.ID == "" {
		return models.Snapshot{}, fmt.Errorf("%w: active association without id", ErrSnapshotCorrupt)
	}
	snapshot.ActiveAssociation = active

	return snapshot, nil
}

// Save implements [SnapshotRepository].
func (r *snapshotRepository) Save(ctx context.Context, snapshot models.Snapshot) error {
	if snapshot.Token == "" || snapshot.User == nil {
		return r.Clear(ctx)
	}

	if err := r.write(ctx, KeyToken, []byte(snapshot.Token)); err != nil {
		return err
	}
	if err := r.writeJSON(ctx, KeyUser, snapshot.User); err != nil {
		return err
	}

	if snapshot.Associations == nil {
		if err := r.kv.Remove(ctx, KeyAssociations); err != nil {
			return fmt.Errorf("remove %s: %w", KeyAssociations, err)
		}
	} else if err := r.writeJSON(ctx, KeyAssociations, snapshot.Associations); err != nil {
		return err
	}

	if snapshot.ActiveAssociation == nil {
		if err := r.kv.Remove(ctx, KeyActiveAssociation); err != nil {
			return fmt.Errorf("remove %s: %w", KeyActiveAssociation, err)
		}
	} else if err := r.writeJSON(ctx, KeyActiveAssociation, snapshot.ActiveAssociation); err != nil {
		return err
	}

	return nil
}

// Clear implements [SnapshotRepository].
func (r *snapshotRepository) Clear(ctx context.Context) error {
	if err := r.kv.Remove(ctx, SnapshotKeys()...); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepository) read(ctx context.Context, key string) (string, error) {
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if r.sealer == nil {
		return raw, nil
	}

	plain, err := r.sealer.Open(raw)
	if err != nil {
		r.logger.Err(err).Str("func", "snapshotRepository.read").Str("key", key).Msg("failed to open sealed blob")
		return "", fmt.Errorf("%w: %s: %v", ErrSnapshotCorrupt, key, err)
	}
	return string(plain), nil
}

// readJSON decodes the value under key into dest. A missing key reports
// found == false and leaves dest untouched.
func (r *snapshotRepository) readJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := r.read(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = json.Unmarshal([]byte(raw), dest); err != nil {
		r.logger.Err(err).Str("func", "snapshotRepository.readJSON").Str("key", key).Msg("failed to decode blob")
		return false, fmt.Errorf("%w: %s: %v", ErrSnapshotCorrupt, key, err)
	}
	return true, nil
}

func (r *snapshotRepository) write(ctx context.Context, key string, value []byte) error {
	stored := string(value)
	if r.sealer != nil {
		sealed, err := r.sealer.Seal(value)
		if err != nil {
			return fmt.Errorf("seal %s: %w", key, err)
		}
		stored = sealed
	}

	if err := r.kv.Set(ctx, key, stored); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (r *snapshotRepository) writeJSON(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.write(ctx, key, payload)
}
