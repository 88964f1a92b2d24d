package state

import (
	"fmt"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/blockchain/verify"
)

// AddTransaction accepts a transaction into the pool of pending
// transactions. The sender must hold enough funds and the signature must
// belong to the sender. A rejected transaction leaves the state untouched.
func (s *State) AddTransaction(recipient database.AccountID, sender database.AccountID, signature string, amount float64) error {
	if !s.hostingNode.IsSet() {
		return ErrUnconfiguredIdentity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := database.NewTx(sender, recipient, signature, amount)

	if err := verify.Transaction(tx, s.balanceOf, true); err != nil {
		s.evHandler("state: AddTransaction: REJECTED: tx[%s]: %s", tx, err)
		return fmt.Errorf("%w: %w", ErrTransactionRejected, err)
	}

	n := s.mempool.Add(tx)
	s.evHandler("state: AddTransaction: accepted: tx[%s] pending[%d]", tx, n)

	s.persist()

	return nil
}
