// Package sqlite implements the ability to read and write a ledger snapshot
// to a SQLite database file. The snapshot is a single row holding the chain
// and pool records.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"

	_ "modernc.org/sqlite"
)

const busyTimeoutMs = 5000

const schema = `CREATE TABLE IF NOT EXISTS snapshot (
	id    INTEGER PRIMARY KEY CHECK (id = 1),
	chain TEXT NOT NULL,
	pool  TEXT NOT NULL
)`

// SQLite represents the serialization implementation for reading and
// storing the snapshot in SQLite. This implements the database.Storage
// interface.
type SQLite struct {
	db *sql.DB
}

// New opens the database file, creating it and its schema when needed.
func New(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s", filepath.Clean(path)))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d", busyTimeoutMs)); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close releases the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load reads the snapshot row.
func (s *SQLite) Load() (database.Snapshot, error) {
	var chainData, poolData string

	row := s.db.QueryRow(`SELECT chain, pool FROM snapshot WHERE id = 1`)
	if err := row.Scan(&chainData, &poolData); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.Snapshot{}, database.ErrNoSnapshot
		}
		return database.Snapshot{}, fmt.Errorf("select snapshot: %w", err)
	}

	chain, err := database.DecodeChain([]byte(chainData))
	if err != nil {
		return database.Snapshot{}, err
	}

	pool, err := database.DecodePool([]byte(poolData))
	if err != nil {
		return database.Snapshot{}, err
	}

	return database.Snapshot{Chain: chain, Pool: pool}, nil
}

// Save replaces the snapshot row inside a transaction.
func (s *SQLite) Save(snap database.Snapshot) error {
	chainData, err := database.EncodeChain(snap.Chain)
	if err != nil {
		return err
	}

	poolData, err := database.EncodePool(snap.Pool)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	const q = `INSERT OR REPLACE INTO snapshot (id, chain, pool) VALUES (1, ?, ?)`
	if _, err := tx.Exec(q, string(chainData), string(poolData)); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	return tx.Commit()
}
