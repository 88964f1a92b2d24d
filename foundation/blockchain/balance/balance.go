// Package balance derives account balances from the chain and the pool of
// pending transactions.
package balance

import "github.com/ardanlabs/blockledger/foundation/blockchain/database"

// Of returns the net balance of the participant. Confirmed and pending
// sends are both subtracted so funds can't be spent twice before they are
// confirmed. Only confirmed receipts are added since pending funds are not
// spendable.
func Of(participant database.AccountID, chain []database.Block, pool []database.Tx) float64 {
	var sent, received float64

	for _, block := range chain {
		for _, tx := range block.Transactions {
			if tx.Sender == participant {
				sent += tx.Amount
			}
			if tx.Recipient == participant {
				received += tx.Amount
			}
		}
	}

	for _, tx := range pool {
		if tx.Sender == participant {
			sent += tx.Amount
		}
	}

	return received - sent
}

// Sheet returns the net balance of every participant found in the chain
// or the pool, computed the same way as Of.
func Sheet(chain []database.Block, pool []database.Tx) map[database.AccountID]float64 {
	sheet := make(map[database.AccountID]float64)

	for _, block := range chain {
		for _, tx := range block.Transactions {
			sheet[tx.Sender] -= tx.Amount
			sheet[tx.Recipient] += tx.Amount
		}
	}

	for _, tx := range pool {
		sheet[tx.Sender] -= tx.Amount
		if _, exists := sheet[tx.Recipient]; !exists {
			sheet[tx.Recipient] = 0
		}
	}

	return sheet
}
