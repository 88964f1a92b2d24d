package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/ardanlabs/blockledger/foundation/blockchain/balance"
	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/nameservice"
)

// Balances prints the current set of balances. When an account or name is
// provided only that balance is printed.
func Balances(w io.Writer, snap database.Snapshot, ns *nameservice.NameService, only string) error {
	fmt.Fprintf(w, "LatestBlockHash: %s\n\n", snap.Chain[len(snap.Chain)-1].Hash())

	if only != "" {
		account, err := ns.Resolve(only)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "Account: %s  Name: %s  Balance: %g\n", account, ns.Lookup(account), balance.Of(account, snap.Chain, snap.Pool))
		return nil
	}

	sheet := balance.Sheet(snap.Chain, snap.Pool)

	accounts := make([]database.AccountID, 0, len(sheet))
	for account := range sheet {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i] < accounts[j] })

	for _, account := range accounts {
		fmt.Fprintf(w, "Account: %s  Name: %s  Balance: %g\n", account, ns.Lookup(account), sheet[account])
	}

	return nil
}
