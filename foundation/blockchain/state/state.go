// Package state is the core API for the ledger and implements all the
// business rules and processing.
package state

import (
	"errors"
	"sync"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/blockledger/foundation/blockchain/mempool"
	"github.com/ardanlabs/blockledger/foundation/blockchain/pow"
	"github.com/ardanlabs/blockledger/foundation/blockchain/storage/memory"
	"github.com/ardanlabs/blockledger/foundation/blockchain/verify"
)

// DefaultAmount is the amount sent when the caller doesn't provide one.
const DefaultAmount = 1.0

// Set of errors returned by the state API.
var (
	ErrUnconfiguredIdentity = errors.New("node has no hosting identity")
	ErrTransactionRejected  = errors.New("transaction rejected")
	ErrMiningAborted        = errors.New("mining aborted")
)

// =============================================================================

// EventHandler defines a function that is called when events
// occur in the processing of the ledger.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented by any
// package providing support for background mining.
type Worker interface {
	Shutdown()
	SignalStartMining()
}

// HostingNode is the identity of the node running the ledger. The zero
// value means the node has no identity and can only be read from.
type HostingNode struct {
	account database.AccountID
}

// Host constructs the identity for the specified account. An empty account
// produces an unset identity.
func Host(account database.AccountID) HostingNode {
	return HostingNode{account: account}
}

// IsSet reports whether the node has an identity.
func (h HostingNode) IsSet() bool {
	return h.account != ""
}

// Account returns the account of the hosting node or
// ErrUnconfiguredIdentity when it is unset.
func (h HostingNode) Account() (database.AccountID, error) {
	if !h.IsSet() {
		return "", ErrUnconfiguredIdentity
	}

	return h.account, nil
}

// String implements the fmt.Stringer interface.
func (h HostingNode) String() string {
	if !h.IsSet() {
		return "<unset>"
	}

	return string(h.account)
}

// =============================================================================

// Config represents the configuration required to start the ledger.
type Config struct {
	HostingNode HostingNode
	Genesis     genesis.Genesis
	Storage     database.Storage
	Strategy    pow.Strategy
	EvHandler   EventHandler
}

// State manages the ledger: the chain, the pool of pending transactions
// and their persistence.
type State struct {
	mu sync.Mutex

	hostingNode HostingNode
	genesis     genesis.Genesis
	evHandler   EventHandler
	strategy    pow.Strategy

	ledger  *database.Ledger
	mempool *mempool.Mempool
	storage database.Storage

	Worker Worker
}

// New constructs the ledger. The genesis block is always synthesized first
// and is replaced by the stored chain when a valid snapshot can be loaded.
// Any failure to load a snapshot is logged and the node starts cold.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	gen := cfg.Genesis
	if gen == (genesis.Genesis{}) {
		gen = genesis.Default()
	}

	strg := cfg.Storage
	if strg == nil {
		strg = memory.New()
	}

	strategy := cfg.Strategy
	if strategy == nil {
		strategy = pow.BruteForce{EvHandler: ev}
	}

	state := State{
		hostingNode: cfg.HostingNode,
		genesis:     gen,
		evHandler:   ev,
		strategy:    strategy,

		ledger:  database.NewLedger(gen.Block()),
		mempool: mempool.New(),
		storage: strg,
	}

	state.hydrate()

	return &state, nil
}

// Shutdown cleanly brings the node down.
func (s *State) Shutdown() error {
	s.evHandler("state: shutdown: started")
	defer s.evHandler("state: shutdown: completed")

	// Stop all ledger writing activity.
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.storage.Close()
}

// =============================================================================

// hydrate replaces the synthesized genesis chain and the empty pool with
// the stored snapshot, if a valid one exists.
func (s *State) hydrate() {
	snap, err := s.storage.Load()
	if err != nil {
		s.evHandler("state: hydrate: COLD START: %s", err)
		return
	}

	if err := verify.Chain(snap.Chain); err != nil {
		s.evHandler("state: hydrate: COLD START: stored chain: %s", err)
		return
	}

	s.ledger.Replace(snap.Chain)
	s.mempool.Replace(snap.Pool)

	s.evHandler("state: hydrate: loaded: blocks[%d] pending[%d]", len(snap.Chain), len(snap.Pool))
}

// persist saves the current chain and pool. A failure is logged and the
// in-memory state remains the source of truth.
func (s *State) persist() {
	snap := database.NewSnapshot(s.ledger.Copy(), s.mempool.Copy())

	if err := s.storage.Save(snap); err != nil {
		s.evHandler("state: persist: WARNING: saving failed: %s", err)
		return
	}

	s.evHandler("state: persist: saved: blocks[%d] pending[%d]", len(snap.Chain), len(snap.Pool))
}
