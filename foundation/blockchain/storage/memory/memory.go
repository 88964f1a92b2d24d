// Package memory implements the ability to read and write a ledger snapshot
// to memory. The records are kept in their encoded form so a load goes
// through the same parsing as the other storage implementations.
package memory

import (
	"sync"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
)

// Memory represents the serialization implementation for reading and storing
// the snapshot in memory. This implements the database.Storage interface.
type Memory struct {
	mu    sync.RWMutex
	chain []byte
	pool  []byte
	saves int
}

// New constructs an empty Memory value for use.
func New() *Memory {
	return &Memory{}
}

// Close in this implementation has nothing to do since everything
// is in memory.
func (m *Memory) Close() error {
	return nil
}

// Load decodes the last saved snapshot.
func (m *Memory) Load() (database.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.chain == nil {
		return database.Snapshot{}, database.ErrNoSnapshot
	}

	chain, err := database.DecodeChain(m.chain)
	if err != nil {
		return database.Snapshot{}, err
	}

	pool, err := database.DecodePool(m.pool)
	if err != nil {
		return database.Snapshot{}, err
	}

	return database.Snapshot{Chain: chain, Pool: pool}, nil
}

// Save encodes and keeps the snapshot, replacing the previous one.
func (m *Memory) Save(snap database.Snapshot) error {
	chain, err := database.EncodeChain(snap.Chain)
	if err != nil {
		return err
	}

	pool, err := database.EncodePool(snap.Pool)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.chain = chain
	m.pool = pool
	m.saves++

	return nil
}

// SetRaw replaces the stored records with the specified bytes without
// any validation. This is used to simulate a damaged snapshot.
func (m *Memory) SetRaw(chain []byte, pool []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.chain = chain
	m.pool = pool
}

// Saves returns the number of successful calls to Save.
func (m *Memory) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.saves
}
