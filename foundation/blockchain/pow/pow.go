// Package pow provides the strategies used to search for a nonce that solves
// the proof of work for a new block.
package pow

import (
	"errors"
	"fmt"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
)

// ErrNoSolution is returned by a bounded strategy that ran out of attempts.
var ErrNoSolution = errors.New("no proof of work solution found")

// Predicate reports whether the nonce solves the proof of work for the
// pending transactions on top of the block with the specified hash.
type Predicate func(trans []database.Tx, lastHash string, nonce uint64) bool

// Strategy interface represents the behavior required to be implemented by
// any package providing a nonce search.
type Strategy interface {
	Solve(lastHash string, trans []database.Tx, valid Predicate) (uint64, error)
}

// =============================================================================

// BruteForce checks every nonce starting at zero until the predicate is
// satisfied. There is no timeout or attempt limit, so the same inputs always
// produce the same nonce.
type BruteForce struct {
	EvHandler func(v string, args ...any)
}

// Solve implements the Strategy interface. It never returns an error.
func (bf BruteForce) Solve(lastHash string, trans []database.Tx, valid Predicate) (uint64, error) {
	ev := bf.EvHandler
	if ev == nil {
		ev = func(string, ...any) {}
	}

	ev("pow: BruteForce: MINING: started: prevBlk[%s]: numTrans[%d]", lastHash, len(trans))

	var nonce uint64
	for !valid(trans, lastHash, nonce) {
		nonce++
		if nonce%1_000_000 == 0 {
			ev("pow: BruteForce: MINING: attempts[%d]", nonce)
		}
	}

	ev("pow: BruteForce: MINING: SOLVED: nonce[%d]", nonce)

	return nonce, nil
}

// Bounded checks nonces starting at zero but gives up after MaxAttempts.
type Bounded struct {
	MaxAttempts uint64
}

// Solve implements the Strategy interface.
func (b Bounded) Solve(lastHash string, trans []database.Tx, valid Predicate) (uint64, error) {
	for nonce := uint64(0); nonce < b.MaxAttempts; nonce++ {
		if valid(trans, lastHash, nonce) {
			return nonce, nil
		}
	}

	return 0, fmt.Errorf("%w: after %d attempts", ErrNoSolution, b.MaxAttempts)
}
