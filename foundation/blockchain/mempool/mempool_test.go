package mempool_test

import (
	"testing"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/blockchain/mempool"
	"github.com/ethereum/go-ethereum/crypto"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func sign(to database.AccountID, amount float64) (database.Tx, error) {
	pk, err := crypto.HexToECDSA("fae85851bdf5c9f49923722ce38f3c1defcfd3619ef5453230a58ad805499959")
	if err != nil {
		return database.Tx{}, err
	}

	return database.NewTx("", to, "", amount).Sign(pk)
}

func TestCRUD(t *testing.T) {
	type table struct {
		name   string
		to     []database.AccountID
		amount []float64
	}

	tt := []table{
		{
			name: "basic",
			to: []database.AccountID{
				"0xF01813E4B85e178A83e29B8E7bF26BD830a25f32",
				"0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4",
				"0xbEE6ACE826eC3DE1B6349888B9151B92522F7F76",
				"0x6Fe6CF3c8fF57c58d24BfC869668F48BCbDb3BD9",
			},
			amount: []float64{10, 50, 100, 10},
		},
	}

	t.Log("Given the need to validate mempool api.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a set of transaction.", testID)
			{
				f := func(t *testing.T) {
					mp := mempool.New()

					for i := range tst.to {
						tx, err := sign(tst.to[i], tst.amount[i])
						if err != nil {
							t.Fatalf("\t%s\tTest %d:\tShould be able to sign transaction.", failed, testID)
						}
						t.Logf("\t%s\tTest %d:\tShould be able to sign transaction.", success, testID)

						if n := mp.Add(tx); n != i+1 {
							t.Fatalf("\t%s\tTest %d:\tShould be able to add new transaction, count %d.", failed, testID, n)
						}
						t.Logf("\t%s\tTest %d:\tShould be able to add new transaction: %s", success, testID, tx)
					}

					for i, tx := range mp.Copy() {
						if tx.Recipient != tst.to[i] || tx.Amount != tst.amount[i] {
							t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, tx.Recipient)
							t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, tst.to[i])
							t.Fatalf("\t%s\tTest %d:\tShould get back transactions in acceptance order.", failed, testID)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould get back transactions in acceptance order.", success, testID)

					cpy := mp.Copy()
					cpy[0].Amount = 1_000_000
					if mp.Copy()[0].Amount != tst.amount[0] {
						t.Fatalf("\t%s\tTest %d:\tShould not be able to change the pool through a copy.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould not be able to change the pool through a copy.", success, testID)

					if mp.Count() != len(tst.to) {
						t.Fatalf("\t%s\tTest %d:\tShould not drain the pool when copying.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould not drain the pool when copying.", success, testID)

					mp.Truncate()
					if l := len(mp.Copy()); l != 0 {
						t.Fatalf("\t%s\tTest %d:\tShould be able to truncate mempool.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to truncate mempool.", success, testID)

					mp.Replace(cpy[1:])
					if mp.Count() != len(tst.to)-1 || mp.Copy()[0].Recipient != tst.to[1] {
						t.Fatalf("\t%s\tTest %d:\tShould be able to replace the mempool.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to replace the mempool.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}
