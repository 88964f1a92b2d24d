package database

import "errors"

// ErrNoSnapshot is returned by a Storage when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot")

// Storage interface represents the behavior required to be implemented by any
// package providing support for persisting and restoring the ledger state.
type Storage interface {
	Load() (Snapshot, error)
	Save(snap Snapshot) error
	Close() error
}

// Snapshot is the complete ledger state of a node: the chain and the pool
// of pending transactions.
type Snapshot struct {
	Chain []Block
	Pool  []Tx
}

// NewSnapshot constructs a snapshot holding copies of the chain and pool.
func NewSnapshot(chain []Block, pool []Tx) Snapshot {
	return Snapshot{
		Chain: copyBlocks(chain),
		Pool:  copyTrans(pool),
	}
}
