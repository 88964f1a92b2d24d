// Package verify implements the rules a transaction, a proof of work and a
// chain must follow to be accepted by the ledger.
package verify

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
)

// target is the prefix a proof hash must start with.
const target = "00"

// Set of errors returned by the verification functions.
var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrInvalidProof      = errors.New("invalid proof")
	ErrBrokenChain       = errors.New("broken chain")
)

// BalanceFunc returns the current net balance of an account.
type BalanceFunc func(account database.AccountID) float64

// =============================================================================

// Transaction checks the transaction has a valid amount and signature. When
// checkFunds is true the sender must also hold at least the amount.
func Transaction(tx database.Tx, getBalance BalanceFunc, checkFunds bool) error {
	if tx.Amount < 0 || math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidAmount, tx.Amount)
	}

	if checkFunds {
		if bal := getBalance(tx.Sender); bal < tx.Amount {
			return fmt.Errorf("%w: balance %g, needed %g", ErrInsufficientFunds, bal, tx.Amount)
		}
	}

	return Signature(tx)
}

// Transactions checks every transaction in the list, without checking
// funds, and returns the first failure.
func Transactions(trans []database.Tx, getBalance BalanceFunc) error {
	for i, tx := range trans {
		if err := Transaction(tx, getBalance, false); err != nil {
			return fmt.Errorf("transaction %d [%s]: %w", i, tx, err)
		}
	}

	return nil
}

// Signature checks the transaction was signed by its sender.
func Signature(tx database.Tx) error {
	if err := tx.VerifySignature(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	return nil
}

// Proof reports whether the nonce solves the proof of work for the
// transactions on top of the block with the specified hash.
func Proof(trans []database.Tx, lastHash string, nonce uint64) bool {
	return strings.HasPrefix(ProofHash(trans, lastHash, nonce), target)
}

// ProofHash returns the hex encoded hash the proof of work is checked
// against.
func ProofHash(trans []database.Tx, lastHash string, nonce uint64) string {
	if trans == nil {
		trans = []database.Tx{}
	}

	data, err := json.Marshal(trans)
	if err != nil {
		return ""
	}

	guess := make([]byte, 0, len(data)+len(lastHash)+20)
	guess = append(guess, data...)
	guess = append(guess, lastHash...)
	guess = strconv.AppendUint(guess, nonce, 10)

	hash := sha256.Sum256(guess)
	return hex.EncodeToString(hash[:])
}

// Chain checks every block is linked to its predecessor and carries a
// proof that solves the work for its transactions, excluding the reward.
func Chain(chain []database.Block) error {
	if len(chain) == 0 {
		return fmt.Errorf("%w: no genesis block", ErrBrokenChain)
	}

	if chain[0].Index != 0 || chain[0].PreviousHash != "" {
		return fmt.Errorf("%w: block 0 is not a genesis block", ErrBrokenChain)
	}

	for i := 1; i < len(chain); i++ {
		prev, block := chain[i-1], chain[i]

		if block.Index != uint64(i) {
			return fmt.Errorf("%w: block %d has index %d", ErrBrokenChain, i, block.Index)
		}

		prevHash := prev.Hash()
		if block.PreviousHash != prevHash {
			return fmt.Errorf("%w: block %d previous hash %s, exp %s", ErrBrokenChain, i, block.PreviousHash, prevHash)
		}

		if !Proof(block.UserTransactions(), prevHash, block.Proof) {
			return fmt.Errorf("%w: block %d proof %d", ErrInvalidProof, i, block.Proof)
		}
	}

	return nil
}
