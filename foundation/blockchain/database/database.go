// Package database handles all the lower level support for maintaining the
// blockchain in memory and the contract for persisting it.
package database

import (
	"sync"
)

// Ledger manages the chain of blocks. The chain only ever grows at the tail
// and always starts with the genesis block.
type Ledger struct {
	mu    sync.RWMutex
	chain []Block
}

// NewLedger constructs a ledger holding only the specified genesis block.
func NewLedger(genesis Block) *Ledger {
	return &Ledger{
		chain: []Block{genesis.Copy()},
	}
}

// Append adds the block to the tail of the chain. No validation is
// performed, the caller is trusted to have validated the block.
func (l *Ledger) Append(block Block) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.chain = append(l.chain, block.Copy())
}

// Replace swaps the entire chain for the specified blocks. This is used
// when hydrating the ledger from a snapshot. An empty set of blocks is
// ignored since the chain can never be empty.
func (l *Ledger) Replace(blocks []Block) {
	if len(blocks) == 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.chain = copyBlocks(blocks)
}

// LatestBlock returns a copy of the most recently appended block.
func (l *Ledger) LatestBlock() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.chain[len(l.chain)-1].Copy()
}

// Len returns the number of blocks in the chain.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.chain)
}

// Copy returns a copy of the chain. Changes to the returned blocks have no
// effect on the ledger.
func (l *Ledger) Copy() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return copyBlocks(l.chain)
}

// =============================================================================

// copyBlocks returns a deep copy of the blocks.
func copyBlocks(blocks []Block) []Block {
	cpy := make([]Block, len(blocks))
	for i, block := range blocks {
		cpy[i] = block.Copy()
	}
	return cpy
}
