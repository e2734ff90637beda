package session

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by a Persistence when nothing is stored under a key
var ErrNotFound = errors.New("session slot not found")

// Persistence is the durable slot behind the Cache. Implementations must
// survive a process restart unless documented otherwise.
type Persistence interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

// MemoryPersistence keeps slots in process memory. It does not survive a
// restart and is meant for tests and throwaway runs.
type MemoryPersistence struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryPersistence creates an empty in-memory persistence
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{slots: make(map[string][]byte)}
}

// Load returns a copy of the stored payload
func (m *MemoryPersistence) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.slots[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), payload...), nil
}

// Save replaces the payload stored under key
func (m *MemoryPersistence) Save(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[key] = append([]byte(nil), payload...)
	return nil
}

// Delete removes key
func (m *MemoryPersistence) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, key)
	return nil
}
