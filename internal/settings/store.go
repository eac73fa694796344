package settings

import (
	"context"
	"fmt"
	"sync"
)

// Store is the key-value option store the badge configuration lives in.
// Get returns def when the key has never been written.
type Store interface {
	Get(ctx context.Context, key, def string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Add writes value only when key is absent and reports whether it did.
	Add(ctx context.Context, key, value string) (bool, error)
}

// BatchSetter is implemented by stores that can write several keys atomically.
type BatchSetter interface {
	SetMany(ctx context.Context, values map[string]string) error
}

// BatchGetter is implemented by stores that can read several keys as of
// one point in time. defaults maps each key to the value returned when the
// key was never written.
type BatchGetter interface {
	GetMany(ctx context.Context, defaults map[string]string) (map[string]string, error)
}

// readMany reads every key of defaults, in one batch when store supports it.
func readMany(ctx context.Context, store Store, defaults map[string]string) (map[string]string, error) {
	if batch, ok := store.(BatchGetter); ok {
		return batch.GetMany(ctx, defaults)
	}

	values := make(map[string]string, len(defaults))
	for key, def := range defaults {
		v, err := store.Get(ctx, key, def)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		values[key] = v
	}
	return values, nil
}

// MemoryStore is an in-process Store, used when no database is configured
// and in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, key, def string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

// GetMany implements BatchGetter.
func (m *MemoryStore) GetMany(_ context.Context, defaults map[string]string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	values := make(map[string]string, len(defaults))
	for key, def := range defaults {
		if v, ok := m.values[key]; ok {
			values[key] = v
		} else {
			values[key] = def
		}
	}
	return values, nil
}

// Set implements Store.
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Add implements Store.
func (m *MemoryStore) Add(_ context.Context, key, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.values[key]; ok {
		return false, nil
	}
	m.values[key] = value
	return true, nil
}

// SetMany implements BatchSetter.
func (m *MemoryStore) SetMany(_ context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range values {
		m.values[k] = v
	}
	return nil
}
