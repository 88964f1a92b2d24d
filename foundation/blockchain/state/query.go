package state

import (
	"github.com/ardanlabs/blockledger/foundation/blockchain/balance"
	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/blockchain/verify"
)

// Balance returns the net balance of the hosting node.
func (s *State) Balance() (float64, error) {
	account, err := s.hostingNode.Account()
	if err != nil {
		return 0, err
	}

	return s.QueryBalance(account), nil
}

// QueryBalance returns the net balance of any participant.
func (s *State) QueryBalance(account database.AccountID) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.balanceOf(account)
}

// QueryBalanceSheet returns the net balance of every participant found in
// the chain or the pool.
func (s *State) QueryBalanceSheet() map[database.AccountID]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return balance.Sheet(s.ledger.Copy(), s.mempool.Copy())
}

// OpenTransactions returns a copy of the pending transactions in the order
// they were accepted.
func (s *State) OpenTransactions() []database.Tx {
	return s.mempool.Copy()
}

// Chain returns a copy of the chain.
func (s *State) Chain() []database.Block {
	return s.ledger.Copy()
}

// LatestBlock returns a copy of the last block in the chain.
func (s *State) LatestBlock() database.Block {
	return s.ledger.LatestBlock()
}

// VerifyChain checks the linkage and the proofs of the whole chain.
func (s *State) VerifyChain() error {
	return verify.Chain(s.ledger.Copy())
}

// =============================================================================

// balanceOf computes the balance of the account. The caller must hold
// the state lock.
func (s *State) balanceOf(account database.AccountID) float64 {
	return balance.Of(account, s.ledger.Copy(), s.mempool.Copy())
}
