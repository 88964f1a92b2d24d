package database

import (
	"time"

	"github.com/ardanlabs/blockledger/foundation/blockchain/signature"
)

// Block represents a group of transactions batched together.
type Block struct {
	Index        uint64 `json:"index"`         // Position of the block in the chain.
	PreviousHash string `json:"previous_hash"` // Hash of the previous block in the chain.
	Transactions []Tx   `json:"transactions"`  // Transactions confirmed by this block.
	Proof        uint64 `json:"proof"`         // Nonce that solved the proof of work.
	TimeStamp    uint64 `json:"timestamp"`     // Time the block was mined.
}

// NewBlock constructs the block that follows the block with the specified
// hash. The transactions are copied.
func NewBlock(index uint64, prevHash string, trans []Tx, proof uint64) Block {
	return Block{
		Index:        index,
		PreviousHash: prevHash,
		Transactions: copyTrans(trans),
		Proof:        proof,
		TimeStamp:    uint64(time.Now().UTC().Unix()),
	}
}

// Hash returns the unique hash for the Block.
func (b Block) Hash() string {
	return signature.Hash(b)
}

// Copy returns a block that shares no memory with the original.
func (b Block) Copy() Block {
	b.Transactions = copyTrans(b.Transactions)
	return b
}

// UserTransactions returns the transactions in the block excluding the
// trailing mining reward. These are the transactions the proof was solved
// against.
func (b Block) UserTransactions() []Tx {
	n := len(b.Transactions)
	if n > 0 && b.Transactions[n-1].IsReward() {
		n--
	}

	return copyTrans(b.Transactions[:n])
}

// =============================================================================

// copyTrans returns a non-nil copy of the transactions.
func copyTrans(trans []Tx) []Tx {
	cpy := make([]Tx, len(trans))
	copy(cpy, trans)
	return cpy
}
