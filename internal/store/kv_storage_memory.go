package store

import (
	"context"
	"sync"
)

// MemoryDSN selects the in-process backend. Nothing survives a restart.
const MemoryDSN = "memory"

type memoryKeyValueStorage struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryKeyValueStorage returns an in-process [KeyValueStorage].
func NewMemoryKeyValueStorage() KeyValueStorage {
	return &memoryKeyValueStorage{entries: make(map[string]string)}
}

func (m *memoryKeyValueStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *memoryKeyValueStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value
	return nil
}

func (m *memoryKeyValueStorage) Remove(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func (m *memoryKeyValueStorage) Close() error {
	return nil
}
