// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const saltSize = 16

var (
	// ErrEmptyPassphrase is returned by [NewSnapshotSealer] for an empty passphrase.
	ErrEmptyPassphrase = errors.New("empty snapshot passphrase")
	// ErrSealedBlobInvalid means the blob is not base64 or is too short.
	ErrSealedBlobInvalid = errors.New("invalid sealed blob")
	// ErrSealedBlobTampered means the authentication tag did not verify.
	ErrSealedBlobTampered = errors.New("sealed blob failed authentication")
)

// snapshotSealer is the private implementation of [SnapshotSealer].
type snapshotSealer struct {
	passphrase []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	// salt is generated once per sealer; every Seal reuses it so the key
	// is derived only once per process.
	salt []byte

	mu   sync.Mutex
	keys map[string][]byte
}

// NewSnapshotSealer constructs a [SnapshotSealer] keyed by passphrase, with
// the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewSnapshotSealer(passphrase string) (SnapshotSealer, error) {
	return newSnapshotSealer(passphrase, 1, 64*1024, 4)
}

func newSnapshotSealer(passphrase string, time, memory uint32, threads uint8) (*snapshotSealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	return &snapshotSealer{
		passphrase:   []byte(passphrase),
		argonTime:    time,
		argonMemory:  memory,
		argonThreads: threads,
		salt:         salt,
		keys:         make(map[string][]byte),
	}, nil
}

// key derives (or returns the cached) 256-bit key for salt.
func (s *snapshotSealer) key(salt []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	if k, ok := s.keys[string(salt)]; ok {
		return k
	}
	k := argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, chacha20poly1305.KeySize)
	s.keys[string(salt)] = k
	return k
}

// Seal implements [SnapshotSealer].
func (s *snapshotSealer) Seal(plaintext []byte) (string, error) {
	aead, err := chacha20poly1305.NewX(s.key(s.salt))
	if err != nil {
		return "", fmt.Errorf("create aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+aead.Overhead())
	blob = append(blob, s.salt...)
	blob = append(blob, nonce...)
	blob = aead.Seal(blob, nonce, plaintext, s.salt)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [SnapshotSealer].
func (s *snapshotSealer) Open(encoded string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", ErrSealedBlobInvalid, err)
	}
	if len(blob) < saltSize+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, fmt.Errorf("%w: blob too short", ErrSealedBlobInvalid)
	}

	salt := blob[:saltSize]
	nonce := blob[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	ciphertext := blob[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(s.key(salt))
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSealedBlobTampered, err)
	}
	return plaintext, nil
}
