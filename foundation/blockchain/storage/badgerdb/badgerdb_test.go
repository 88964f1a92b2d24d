package badgerdb_test

import (
	"testing"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/blockchain/storage/badgerdb"
	"github.com/ardanlabs/blockledger/foundation/blockchain/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) database.Storage {
	strg, err := badgerdb.New("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { strg.Close() })

	return strg
}

func TestStorage(t *testing.T) {
	raw := func(t *testing.T, strg database.Storage, chain string, pool string) {
		require.NoError(t, strg.(*badgerdb.Badger).SetRaw([]byte(chain), []byte(pool)))
	}

	storagetest.Run(t, open, raw)
}

func TestReopen(t *testing.T) {
	dir := t.TempDir()

	strg, err := badgerdb.New(dir, nil)
	require.NoError(t, err)

	snap := storagetest.Snapshot()
	require.NoError(t, strg.Save(snap))
	require.NoError(t, strg.Close())

	strg, err = badgerdb.New(dir, nil)
	require.NoError(t, err)
	defer strg.Close()

	got, err := strg.Load()
	require.NoError(t, err)
	assert.Equal(t, snap.Chain, got.Chain)
	assert.Equal(t, snap.Pool, got.Pool)
}
