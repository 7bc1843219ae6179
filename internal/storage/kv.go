// Package storage persists the financial document and small pieces of
// preference state to a local key-value medium.
package storage

import (
	"context"
	"sync"

	"github.com/Veraticus/money-mastery/internal/common"
)

// KV is the persistent key-value medium behind the Store. Implementations
// must be safe for concurrent use.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// MemoryKV is an in-process KV used in tests and ephemeral sessions.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete removes key.
func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Close is a no-op.
func (m *MemoryKV) Close() error { return nil }

// Unavailable is the degraded medium used when no persistent storage can
// be opened. Reads report the medium as unavailable and writes fail, so
// the Store reseeds on every load and treats every save as a silent no-op.
type Unavailable struct{}

// Get always reports the medium as unavailable.
func (Unavailable) Get(context.Context, string) (string, bool, error) {
	return "", false, common.ErrStorageUnavailable
}

// Set always reports the medium as unavailable.
func (Unavailable) Set(context.Context, string, string) error {
	return common.ErrStorageUnavailable
}

// Delete always reports the medium as unavailable.
func (Unavailable) Delete(context.Context, string) error {
	return common.ErrStorageUnavailable
}

// Close is a no-op.
func (Unavailable) Close() error { return nil }
