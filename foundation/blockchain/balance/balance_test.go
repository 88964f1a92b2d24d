package balance_test

import (
	"testing"

	"github.com/ardanlabs/blockledger/foundation/blockchain/balance"
	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

const (
	alice database.AccountID = "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4"
	bob   database.AccountID = "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32"
	miner database.AccountID = "0xFef311483Cc040e1A89fb9bb469eeB8A70935EF8"
)

func block(trans ...database.Tx) database.Block {
	return database.Block{Transactions: trans}
}

func TestOf(t *testing.T) {
	type table struct {
		name        string
		participant database.AccountID
		chain       []database.Block
		pool        []database.Tx
		exp         float64
	}

	tt := []table{
		{
			name:        "empty",
			participant: alice,
			exp:         0,
		},
		{
			name:        "genesis-only",
			participant: alice,
			chain:       []database.Block{block()},
			exp:         0,
		},
		{
			name:        "mining-reward",
			participant: miner,
			chain:       []database.Block{block(), block(database.NewRewardTx(miner, 10))},
			exp:         10,
		},
		{
			name:        "confirmed-send",
			participant: alice,
			chain: []database.Block{
				block(database.NewRewardTx(alice, 10)),
				block(database.NewTx(alice, bob, "", 4), database.NewRewardTx(miner, 10)),
			},
			exp: 6,
		},
		{
			name:        "pending-send-counts",
			participant: alice,
			chain:       []database.Block{block(database.NewRewardTx(alice, 10))},
			pool:        []database.Tx{database.NewTx(alice, bob, "", 3), database.NewTx(alice, bob, "", 2.5)},
			exp:         4.5,
		},
		{
			name:        "pending-receive-ignored",
			participant: bob,
			chain:       []database.Block{block(database.NewRewardTx(alice, 10))},
			pool:        []database.Tx{database.NewTx(alice, bob, "", 3)},
			exp:         0,
		},
		{
			name:        "can-go-negative",
			participant: bob,
			pool:        []database.Tx{database.NewTx(bob, alice, "", 1)},
			exp:         -1,
		},
	}

	t.Log("Given the need to derive balances from the chain and pool.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				got := balance.Of(tst.participant, tst.chain, tst.pool)
				if got != tst.exp {
					t.Logf("\t%s\tTest %d:\tgot: %g", failed, testID, got)
					t.Logf("\t%s\tTest %d:\texp: %g", failed, testID, tst.exp)
					t.Fatalf("\t%s\tTest %d:\tShould get the right balance.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get the right balance.", success, testID)

				sheet := balance.Sheet(tst.chain, tst.pool)
				if got := sheet[tst.participant]; got != tst.exp {
					t.Logf("\t%s\tTest %d:\tgot: %g", failed, testID, got)
					t.Logf("\t%s\tTest %d:\texp: %g", failed, testID, tst.exp)
					t.Fatalf("\t%s\tTest %d:\tShould get the same balance from the sheet.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get the same balance from the sheet.", success, testID)
			}

			t.Run(tst.name, f)
		}
	}
}
