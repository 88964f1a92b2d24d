package memory_test

import (
	"testing"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/blockchain/storage/memory"
	"github.com/ardanlabs/blockledger/foundation/blockchain/storage/storagetest"
)

func TestStorage(t *testing.T) {
	open := func(t *testing.T) database.Storage {
		return memory.New()
	}

	raw := func(t *testing.T, strg database.Storage, chain string, pool string) {
		strg.(*memory.Memory).SetRaw([]byte(chain), []byte(pool))
	}

	storagetest.Run(t, open, raw)
}
