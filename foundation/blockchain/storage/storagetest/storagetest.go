// Package storagetest provides a set of tests every database.Storage
// implementation must pass.
package storagetest

import (
	"testing"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/blockchain/genesis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Miner is the account credited with the reward in the Snapshot fixture.
const Miner database.AccountID = "0xFef311483Cc040e1A89fb9bb469eeB8A70935EF8"

// Snapshot returns a small snapshot holding the genesis block, one mined
// block and one pending transaction.
func Snapshot() database.Snapshot {
	gen := genesis.Default().Block()

	block := database.Block{
		Index:        1,
		PreviousHash: gen.Hash(),
		Transactions: []database.Tx{database.NewRewardTx(Miner, genesis.DefaultMiningReward)},
		Proof:        42,
		TimeStamp:    1700000000,
	}

	pool := []database.Tx{
		database.NewTx(Miner, "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4", "0x0102", 2.5),
	}

	return database.NewSnapshot([]database.Block{gen, block}, pool)
}

// Opener constructs a new, empty storage for one test.
type Opener func(t *testing.T) database.Storage

// RawWriter stores the chain and pool records without validation so the
// parsing of damaged snapshots can be tested.
type RawWriter func(t *testing.T, strg database.Storage, chain string, pool string)

// Run executes the conformance tests against the storage built by open.
func Run(t *testing.T, open Opener, raw RawWriter) {
	t.Run("missing", func(t *testing.T) {
		strg := open(t)

		_, err := strg.Load()
		require.ErrorIs(t, err, database.ErrNoSnapshot)
	})

	t.Run("roundtrip", func(t *testing.T) {
		strg := open(t)
		snap := Snapshot()

		require.NoError(t, strg.Save(snap))

		got, err := strg.Load()
		require.NoError(t, err)
		assert.Equal(t, snap.Chain, got.Chain)
		assert.Equal(t, snap.Pool, got.Pool)
	})

	t.Run("replace", func(t *testing.T) {
		strg := open(t)
		snap := Snapshot()

		require.NoError(t, strg.Save(snap))
		require.NoError(t, strg.Save(database.NewSnapshot(snap.Chain[:1], nil)))

		got, err := strg.Load()
		require.NoError(t, err)
		assert.Len(t, got.Chain, 1)
		assert.NotNil(t, got.Pool)
		assert.Empty(t, got.Pool)
	})

	t.Run("damaged", func(t *testing.T) {
		const goodChain = `[{"index":0,"previous_hash":"","transactions":[],"proof":100,"timestamp":0}]`
		const goodPool = `[]`

		tt := []struct {
			name   string
			chain  string
			pool   string
			record string
		}{
			{"chain-not-json", `[{`, goodPool, database.RecordChain},
			{"chain-empty", `[]`, goodPool, database.RecordChain},
			{"chain-missing-proof", `[{"index":0,"previous_hash":"","transactions":[],"timestamp":0}]`, goodPool, database.RecordChain},
			{"chain-old-field", `[{"index":0,"previous_hash":"","transaction":[],"proof":100,"timestamp":0}]`, goodPool, database.RecordChain},
			{"chain-bad-tx", `[{"index":0,"previous_hash":"","transactions":[{"sender":"a"}],"proof":100,"timestamp":0}]`, goodPool, database.RecordChain},
			{"pool-not-list", goodChain, `null`, database.RecordPool},
			{"pool-missing-amount", goodChain, `[{"sender":"a","recipient":"b","signature":""}]`, database.RecordPool},
			{"pool-wrong-type", goodChain, `[{"sender":"a","recipient":"b","signature":"","amount":"1"}]`, database.RecordPool},
		}

		for _, tst := range tt {
			t.Run(tst.name, func(t *testing.T) {
				strg := open(t)
				raw(t, strg, tst.chain, tst.pool)

				_, err := strg.Load()
				require.Error(t, err)

				var pe *database.ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, tst.record, pe.Record)
			})
		}
	})
}
