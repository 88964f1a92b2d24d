// This program is a wallet for the ledger. It manages key files, signs
// transactions and talks to a node.
package main

import "github.com/ardanlabs/blockledger/app/wallet/cmd"

func main() {
	cmd.Execute()
}
