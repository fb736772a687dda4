// Package memory implements the database Storage interface over a map.
// It exists for testing, nothing is durable here.
package memory

import (
	"sync"

	"github.com/luxchain/ledger/foundation/blockchain/database"
)

// Memory represents the storage implementation for reading and storing
// chain records in memory. This implements the database.Storage interface.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New constructs a Memory value for use.
func New() *Memory {
	return &Memory{
		data: make(map[string][]byte),
	}
}

// Close in this implementation has nothing to do since everything
// is in memory.
func (m *Memory) Close() error {
	return nil
}

// Get reads the record stored under the specified key. database.ErrNotFound
// is returned when the key is absent.
func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.data[key]
	if !exists {
		return nil, database.ErrNotFound
	}

	data := make([]byte, len(value))
	copy(data, value)

	return data, nil
}

// Put stores the record under the specified key, replacing any existing
// record.
func (m *Memory) Put(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	value := make([]byte, len(data))
	copy(value, data)
	m.data[key] = value

	return nil
}
