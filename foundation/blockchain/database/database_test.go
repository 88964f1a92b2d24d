package database_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ethereum/go-ethereum/crypto"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func genesisBlock() database.Block {
	return database.Block{
		Index:        0,
		PreviousHash: "",
		Transactions: []database.Tx{},
		Proof:        100,
		TimeStamp:    0,
	}
}

// =============================================================================

func Test_Ledger(t *testing.T) {
	t.Log("Given the need to maintain an append only chain.")
	{
		t.Logf("\tTest 0:\tWhen starting from the genesis block.")
		{
			ledger := database.NewLedger(genesisBlock())

			if ledger.Len() != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould have only the genesis block: %d", failed, ledger.Len())
			}
			t.Logf("\t%s\tTest 0:\tShould have only the genesis block.", success)

			if !reflect.DeepEqual(ledger.LatestBlock(), genesisBlock()) {
				t.Fatalf("\t%s\tTest 0:\tShould return the genesis block as the latest block.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould return the genesis block as the latest block.", success)

			next := database.NewBlock(1, ledger.LatestBlock().Hash(), nil, 7)
			ledger.Append(next)

			if ledger.Len() != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould be able to append a block: %d", failed, ledger.Len())
			}
			t.Logf("\t%s\tTest 0:\tShould be able to append a block.", success)

			chain := ledger.Copy()
			if chain[1].PreviousHash != chain[0].Hash() {
				t.Fatalf("\t%s\tTest 0:\tShould link the new block to genesis.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould link the new block to genesis.", success)

			if chain[1].Transactions == nil {
				t.Fatalf("\t%s\tTest 0:\tShould never store a nil transaction list.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould never store a nil transaction list.", success)
		}

		t.Logf("\tTest 1:\tWhen changing the values returned by the ledger.")
		{
			ledger := database.NewLedger(genesisBlock())
			ledger.Append(database.NewBlock(1, ledger.LatestBlock().Hash(), []database.Tx{database.NewRewardTx("0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4", 10)}, 3))

			chain := ledger.Copy()
			chain[0].Proof = 999
			chain[1].Transactions[0].Amount = 1_000_000

			latest := ledger.LatestBlock()
			latest.Transactions[0].Recipient = "thief"

			after := ledger.Copy()
			if after[0].Proof != 100 || after[1].Transactions[0].Amount != 10 || ledger.Len() != 2 {
				t.Fatalf("\t%s\tTest 1:\tShould not be able to corrupt the chain through a copy.", failed)
			}
			if after[1].Transactions[0].Recipient != "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4" {
				t.Fatalf("\t%s\tTest 1:\tShould not be able to corrupt the chain through the latest block.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould not be able to corrupt the chain through returned values.", success)
		}

		t.Logf("\tTest 2:\tWhen replacing the chain.")
		{
			ledger := database.NewLedger(genesisBlock())

			ledger.Replace(nil)
			if ledger.Len() != 1 {
				t.Fatalf("\t%s\tTest 2:\tShould ignore an empty replacement.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould ignore an empty replacement.", success)

			g := genesisBlock()
			blocks := []database.Block{g, database.NewBlock(1, g.Hash(), nil, 1), database.NewBlock(2, "x", nil, 2)}
			ledger.Replace(blocks)
			if ledger.Len() != 3 || ledger.LatestBlock().Index != 2 {
				t.Fatalf("\t%s\tTest 2:\tShould replace and not merge the chain.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould replace and not merge the chain.", success)
		}
	}
}

func Test_UserTransactions(t *testing.T) {
	pk, err := crypto.HexToECDSA("fae85851bdf5c9f49923722ce38f3c1defcfd3619ef5453230a58ad805499959")
	if err != nil {
		t.Fatalf("\t%s\tShould be able to load the private key: %s", failed, err)
	}

	tx, err := database.NewTx("", "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32", "", 5).Sign(pk)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to sign a transaction: %s", failed, err)
	}

	t.Log("Given the need to separate user transactions from the reward.")
	{
		block := database.NewBlock(1, "prev", []database.Tx{tx, database.NewRewardTx("0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4", 10)}, 1)

		got := block.UserTransactions()
		if len(got) != 1 || got[0] != tx {
			t.Fatalf("\t%s\tShould strip the trailing reward: %v", failed, got)
		}
		t.Logf("\t%s\tShould strip the trailing reward.", success)

		empty := database.NewBlock(1, "prev", nil, 1)
		if got := empty.UserTransactions(); got == nil || len(got) != 0 {
			t.Fatalf("\t%s\tShould return an empty list for an empty block.", failed)
		}
		t.Logf("\t%s\tShould return an empty list for an empty block.", success)
	}
}

func Test_Signing(t *testing.T) {
	pk, err := crypto.HexToECDSA("fae85851bdf5c9f49923722ce38f3c1defcfd3619ef5453230a58ad805499959")
	if err != nil {
		t.Fatalf("\t%s\tShould be able to load the private key: %s", failed, err)
	}

	t.Log("Given the need to sign transactions.")
	{
		tx, err := database.NewTx("", "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32", "", 5).Sign(pk)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to sign a transaction: %s", failed, err)
		}
		t.Logf("\t%s\tShould be able to sign a transaction.", success)

		if tx.Sender != "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4" {
			t.Fatalf("\t%s\tShould set the sender from the private key: %s", failed, tx.Sender)
		}
		t.Logf("\t%s\tShould set the sender from the private key.", success)

		if err := tx.VerifySignature(); err != nil {
			t.Fatalf("\t%s\tShould verify the signed transaction: %s", failed, err)
		}
		t.Logf("\t%s\tShould verify the signed transaction.", success)

		tampered := tx
		tampered.Amount = 500
		if err := tampered.VerifySignature(); err == nil {
			t.Fatalf("\t%s\tShould reject a transaction whose amount changed.", failed)
		}
		t.Logf("\t%s\tShould reject a transaction whose amount changed.", success)
	}
}

func Test_Records(t *testing.T) {
	type table struct {
		name   string
		chain  string
		pool   string
		record string
	}

	tt := []table{
		{
			name:   "missing-field",
			chain:  `[{"index":0,"previous_hash":"","transactions":[],"proof":100}]`,
			pool:   `[]`,
			record: database.RecordChain,
		},
		{
			name:   "wrong-type",
			chain:  `[{"index":"zero","previous_hash":"","transactions":[],"proof":100,"timestamp":0}]`,
			pool:   `[]`,
			record: database.RecordChain,
		},
		{
			name:   "old-field-name",
			chain:  `[{"index":0,"previous_hash":"","transaction":[],"proof":100,"timestamp":0}]`,
			pool:   `[]`,
			record: database.RecordChain,
		},
		{
			name:   "empty-chain",
			chain:  `[]`,
			pool:   `[]`,
			record: database.RecordChain,
		},
		{
			name:   "tx-missing-signature",
			chain:  `[{"index":0,"previous_hash":"","transactions":[],"proof":100,"timestamp":0}]`,
			pool:   `[{"sender":"a","recipient":"b","amount":1}]`,
			record: database.RecordPool,
		},
		{
			name:   "truncated-pool",
			chain:  `[{"index":0,"previous_hash":"","transactions":[],"proof":100,"timestamp":0}]`,
			pool:   `[{"sender":"a","recipi`,
			record: database.RecordPool,
		},
	}

	t.Log("Given the need to reject records that don't match the schema.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				_, errChain := database.DecodeChain([]byte(tst.chain))
				_, errPool := database.DecodePool([]byte(tst.pool))

				err := errChain
				if tst.record == database.RecordPool {
					if errChain != nil {
						t.Fatalf("\t%s\tTest %d:\tShould decode the chain record: %s", failed, testID, errChain)
					}
					err = errPool
				}

				var pe *database.ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("\t%s\tTest %d:\tShould get a parse error: %v", failed, testID, err)
				}
				t.Logf("\t%s\tTest %d:\tShould get a parse error: %s", success, testID, err)

				if pe.Record != tst.record {
					t.Fatalf("\t%s\tTest %d:\tShould name the %s record, got %s.", failed, testID, tst.record, pe.Record)
				}
				t.Logf("\t%s\tTest %d:\tShould name the %s record.", success, testID, tst.record)
			}

			t.Run(tst.name, f)
		}
	}

	t.Log("Given the need to round trip records.")
	{
		g := genesisBlock()
		reward := database.NewRewardTx("0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4", 10)
		chain := []database.Block{g, database.NewBlock(1, g.Hash(), []database.Tx{reward}, 42)}
		pool := []database.Tx{database.NewTx("0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4", "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32", "0xabc", 2.5)}

		chainData, err := database.EncodeChain(chain)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to encode the chain: %s", failed, err)
		}
		poolData, err := database.EncodePool(pool)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to encode the pool: %s", failed, err)
		}

		gotChain, err := database.DecodeChain(chainData)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to decode the chain: %s", failed, err)
		}
		gotPool, err := database.DecodePool(poolData)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to decode the pool: %s", failed, err)
		}

		if !reflect.DeepEqual(gotChain, chain) {
			t.Logf("\t%s\tgot: %+v", failed, gotChain)
			t.Logf("\t%s\texp: %+v", failed, chain)
			t.Fatalf("\t%s\tShould get back the same chain.", failed)
		}
		t.Logf("\t%s\tShould get back the same chain.", success)

		if !reflect.DeepEqual(gotPool, pool) {
			t.Fatalf("\t%s\tShould get back the same pool.", failed)
		}
		t.Logf("\t%s\tShould get back the same pool.", success)

		if gotChain[1].Hash() != chain[1].Hash() {
			t.Fatalf("\t%s\tShould get back a block with the same hash.", failed)
		}
		t.Logf("\t%s\tShould get back a block with the same hash.", success)
	}
}
