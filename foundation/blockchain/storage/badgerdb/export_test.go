package badgerdb

import "github.com/dgraph-io/badger/v3"

// SetRaw stores the records without validation to simulate a damaged
// snapshot.
func (b *Badger) SetRaw(chain []byte, pool []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(keyChain, chain); err != nil {
			return err
		}
		return txn.Set(keyPool, pool)
	})
}
