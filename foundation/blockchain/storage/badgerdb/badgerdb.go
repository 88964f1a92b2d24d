// Package badgerdb implements the ability to read and write a ledger
// snapshot to a badger key/value database. The chain and the pool are
// stored as two records under their own keys.
package badgerdb

import (
	"errors"
	"fmt"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/dgraph-io/badger/v3"
)

// Keys the records are stored under.
var (
	keyChain = []byte(database.RecordChain)
	keyPool  = []byte(database.RecordPool)
)

// Badger represents the serialization implementation for reading and
// storing the snapshot in badger. This implements the database.Storage
// interface.
type Badger struct {
	db *badger.DB
}

// New opens the badger database in the specified directory. An empty
// directory opens an in-memory database.
func New(dir string, evHandler func(v string, args ...any)) (*Badger, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = logger{ev: evHandler}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger %q: %w", dir, err)
	}

	return &Badger{db: db}, nil
}

// Close flushes and closes the database.
func (b *Badger) Close() error {
	return b.db.Close()
}

// Load reads both records inside a single read transaction.
func (b *Badger) Load() (database.Snapshot, error) {
	var snap database.Snapshot

	err := b.db.View(func(txn *badger.Txn) error {
		chainData, err := read(txn, keyChain)
		if err != nil {
			return err
		}

		poolData, err := read(txn, keyPool)
		if err != nil {
			return err
		}

		if snap.Chain, err = database.DecodeChain(chainData); err != nil {
			return err
		}

		if snap.Pool, err = database.DecodePool(poolData); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return database.Snapshot{}, err
	}

	return snap, nil
}

// Save writes both records inside a single write transaction so the chain
// and the pool are always replaced together.
func (b *Badger) Save(snap database.Snapshot) error {
	chainData, err := database.EncodeChain(snap.Chain)
	if err != nil {
		return err
	}

	poolData, err := database.EncodePool(snap.Pool)
	if err != nil {
		return err
	}

	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(keyChain, chainData); err != nil {
			return err
		}
		return txn.Set(keyPool, poolData)
	})
}

// =============================================================================

// read returns a copy of the value stored under the key.
func read(txn *badger.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, database.ErrNoSnapshot
		}
		return nil, err
	}

	return item.ValueCopy(nil)
}

// logger routes badger warnings and errors to the event handler and
// drops the rest.
type logger struct {
	ev func(v string, args ...any)
}

func (l logger) Errorf(format string, args ...any) {
	if l.ev != nil {
		l.ev("badgerdb: ERROR: "+format, args...)
	}
}

func (l logger) Warningf(format string, args ...any) {
	if l.ev != nil {
		l.ev("badgerdb: WARNING: "+format, args...)
	}
}

func (logger) Infof(string, ...any)  {}
func (logger) Debugf(string, ...any) {}
