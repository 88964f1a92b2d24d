// Package commands contains the functionality for the admin commands.
package commands

import (
	"fmt"
	"io"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/nameservice"
)

// Chain prints every block of the snapshot with its transactions.
func Chain(w io.Writer, snap database.Snapshot, ns *nameservice.NameService) {
	for _, block := range snap.Chain {
		fmt.Fprintf(w, "Block %d: hash[%s] prev[%s] proof[%d] time[%d]\n", block.Index, block.Hash(), block.PreviousHash, block.Proof, block.TimeStamp)
		printTxs(w, block.Transactions, ns)
	}
}

// Pool prints the pending transactions of the snapshot.
func Pool(w io.Writer, snap database.Snapshot, ns *nameservice.NameService) {
	fmt.Fprintf(w, "Pending: %d\n", len(snap.Pool))
	printTxs(w, snap.Pool, ns)
}

func printTxs(w io.Writer, trans []database.Tx, ns *nameservice.NameService) {
	for _, tx := range trans {
		fmt.Fprintf(w, "  %s -> %s: %g\n", ns.Lookup(tx.Sender), ns.Lookup(tx.Recipient), tx.Amount)
	}
}
