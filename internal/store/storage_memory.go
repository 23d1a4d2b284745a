package store

import (
	"context"
	"maps"
	"sync"
)

// memoryStorage is an in-process [KeyValueStorage]. Nothing survives a
// restart.
type memoryStorage struct {
	mu      sync.RWMutex
	entries map[string]string
	closed  bool
}

// NewMemoryStorage returns an empty in-memory [KeyValueStorage].
func NewMemoryStorage() KeyValueStorage {
	return newMemoryStorage(nil)
}

func newMemoryStorage(seed map[string]string) *memoryStorage {
	entries := make(map[string]string, len(seed))
	maps.Copy(entries, seed)
	return &memoryStorage{entries: entries}
}

func (m *memoryStorage) Get(_ context.Context, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", ErrStorageClosed
	}
	value, ok := m.entries[name]
	if !ok {
		return "", ErrEntryNotFound
	}
	return value, nil
}

func (m *memoryStorage) Set(_ context.Context, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageClosed
	}
	m.entries[name] = value
	return nil
}

func (m *memoryStorage) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageClosed
	}
	delete(m.entries, name)
	return nil
}

func (m *memoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}
