// Package disk implements the ability to read and write a ledger snapshot
// to a two line text file. The first line holds the chain and the second
// line holds the pool of pending transactions.
package disk

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
)

// maxLine is the largest record the scanner will accept.
const maxLine = 64 << 20

// Disk represents the serialization implementation for reading and storing
// the snapshot in a single file on disk. This implements the
// database.Storage interface.
type Disk struct {
	path string
}

// New constructs a Disk value for use. The directory holding the file is
// created if it doesn't exist.
func New(path string) (*Disk, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	return &Disk{path: path}, nil
}

// Close in this implementation has nothing to do since the file is opened
// and closed on every read and write.
func (d *Disk) Close() error {
	return nil
}

// Path returns the location of the snapshot file.
func (d *Disk) Path() string {
	return d.path
}

// Load reads the snapshot from disk. A missing file is reported as
// database.ErrNoSnapshot.
func (d *Disk) Load() (database.Snapshot, error) {
	f, err := os.Open(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return database.Snapshot{}, database.ErrNoSnapshot
		}
		return database.Snapshot{}, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	var lines [][]byte
	for scanner.Scan() {
		lines = append(lines, bytes.Clone(scanner.Bytes()))
	}
	if err := scanner.Err(); err != nil {
		return database.Snapshot{}, fmt.Errorf("reading %s: %w", d.path, err)
	}

	if len(lines) < 1 {
		return database.Snapshot{}, &database.ParseError{Record: database.RecordChain, Err: errors.New("missing line")}
	}
	if len(lines) < 2 {
		return database.Snapshot{}, &database.ParseError{Record: database.RecordPool, Err: errors.New("missing line")}
	}

	chain, err := database.DecodeChain(lines[0])
	if err != nil {
		return database.Snapshot{}, err
	}

	pool, err := database.DecodePool(lines[1])
	if err != nil {
		return database.Snapshot{}, err
	}

	return database.Snapshot{Chain: chain, Pool: pool}, nil
}

// Save writes the snapshot to a temporary file and renames it over the
// previous snapshot so a failed write never leaves a partial file behind.
func (d *Disk) Save(snap database.Snapshot) error {
	chain, err := database.EncodeChain(snap.Chain)
	if err != nil {
		return err
	}

	pool, err := database.EncodePool(snap.Pool)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(d.path), filepath.Base(d.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	w := bufio.NewWriter(f)
	w.Write(chain)
	w.WriteByte('\n')
	w.Write(pool)

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, d.path)
}
