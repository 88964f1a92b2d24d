package commands

import (
	"fmt"
	"io"

	"github.com/ardanlabs/blockledger/foundation/blockchain/balance"
	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/blockchain/verify"
)

// Verify checks the chain linkage and proofs and the signatures of the
// pending transactions.
func Verify(w io.Writer, snap database.Snapshot) error {
	if err := verify.Chain(snap.Chain); err != nil {
		return err
	}
	fmt.Fprintf(w, "chain: %d blocks verified\n", len(snap.Chain))

	oracle := func(account database.AccountID) float64 {
		return balance.Of(account, snap.Chain, snap.Pool)
	}

	if err := verify.Transactions(snap.Pool, oracle); err != nil {
		return err
	}
	fmt.Fprintf(w, "pool: %d transactions verified\n", len(snap.Pool))

	return nil
}
