// Package storage selects the implementation used to persist the ledger
// snapshot.
package storage

import (
	"fmt"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/blockchain/storage/badgerdb"
	"github.com/ardanlabs/blockledger/foundation/blockchain/storage/disk"
	"github.com/ardanlabs/blockledger/foundation/blockchain/storage/memory"
	"github.com/ardanlabs/blockledger/foundation/blockchain/storage/sqlite"
)

// Set of storage kinds that can be opened.
const (
	KindDisk   = "disk"
	KindBadger = "badger"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// Open constructs the storage of the specified kind at the specified path.
// The path is a file for disk and sqlite, a directory for badger and is
// ignored for memory.
func Open(kind string, path string, evHandler func(v string, args ...any)) (database.Storage, error) {
	switch kind {
	case KindDisk:
		return disk.New(path)
	case KindBadger:
		return badgerdb.New(path, evHandler)
	case KindSQLite:
		return sqlite.New(path)
	case KindMemory:
		return memory.New(), nil
	}

	return nil, fmt.Errorf("unknown storage kind %q", kind)
}
