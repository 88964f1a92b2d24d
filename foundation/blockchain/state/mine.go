package state

import (
	"fmt"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/blockchain/verify"
)

// MineBlock solves the proof of work for the pending transactions and
// appends a new block holding them plus the reward for the hosting node.
// Every pending transaction is checked again before the block is built and
// mining is aborted, leaving the pool intact, on the first bad signature.
func (s *State) MineBlock() (database.Block, error) {
	beneficiary, err := s.hostingNode.Account()
	if err != nil {
		return database.Block{}, err
	}

	// Admission is blocked until the block is appended and the pool is
	// cleared so no transaction is lost across the copy.
	s.mu.Lock()
	defer s.mu.Unlock()

	lastHash := s.ledger.LatestBlock().Hash()
	trans := s.mempool.Copy()

	s.evHandler("state: MineBlock: MINING: perform POW: prevBlk[%s] numTrans[%d]", lastHash, len(trans))

	proof, err := s.strategy.Solve(lastHash, trans, verify.Proof)
	if err != nil {
		return database.Block{}, fmt.Errorf("%w: %w", ErrMiningAborted, err)
	}

	s.evHandler("state: MineBlock: MINING: verify transactions")

	for _, tx := range trans {
		if err := verify.Signature(tx); err != nil {
			s.evHandler("state: MineBlock: MINING: ABORTED: tx[%s]: %s", tx, err)
			return database.Block{}, fmt.Errorf("%w: tx[%s]: %w", ErrMiningAborted, tx, err)
		}
	}

	trans = append(trans, database.NewRewardTx(beneficiary, s.genesis.MiningReward))
	block := database.NewBlock(uint64(s.ledger.Len()), lastHash, trans, proof)

	s.evHandler("state: MineBlock: MINING: update local state: blk[%d]", block.Index)

	s.ledger.Append(block)
	s.mempool.Truncate()
	s.persist()

	return block, nil
}
