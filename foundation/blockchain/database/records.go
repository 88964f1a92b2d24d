package database

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ardanlabs/blockledger/foundation/validate"
)

// Names of the two records that make up a snapshot.
const (
	RecordChain = "chain"
	RecordPool  = "pool"
)

// ParseError is returned when a persisted record doesn't match the schema
// of the chain or pool records.
type ParseError struct {
	Record string
	Err    error
}

// Error implements the error interface.
func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse %s record: %s", pe.Record, pe.Err)
}

// Unwrap provides access to the underlying error.
func (pe *ParseError) Unwrap() error {
	return pe.Err
}

// IsParseError checks if an error of type ParseError exists.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// =============================================================================

// txRecord is the persisted schema of a transaction. Pointer fields let a
// missing field be told apart from a zero value.
type txRecord struct {
	Sender    *string  `json:"sender" validate:"required"`
	Recipient *string  `json:"recipient" validate:"required"`
	Signature *string  `json:"signature" validate:"required"`
	Amount    *float64 `json:"amount" validate:"required,gte=0"`
}

func (r txRecord) toTx() Tx {
	return Tx{
		Sender:    AccountID(*r.Sender),
		Recipient: AccountID(*r.Recipient),
		Signature: *r.Signature,
		Amount:    *r.Amount,
	}
}

// blockRecord is the persisted schema of a block.
type blockRecord struct {
	Index        *uint64    `json:"index" validate:"required"`
	PreviousHash *string    `json:"previous_hash" validate:"required"`
	Transactions []txRecord `json:"transactions" validate:"required,dive"`
	Proof        *uint64    `json:"proof" validate:"required"`
	TimeStamp    *uint64    `json:"timestamp" validate:"required"`
}

func (r blockRecord) toBlock() Block {
	trans := make([]Tx, len(r.Transactions))
	for i, tr := range r.Transactions {
		trans[i] = tr.toTx()
	}

	return Block{
		Index:        *r.Index,
		PreviousHash: *r.PreviousHash,
		Transactions: trans,
		Proof:        *r.Proof,
		TimeStamp:    *r.TimeStamp,
	}
}

// =============================================================================

// EncodeChain marshals the chain into its persisted record.
func EncodeChain(chain []Block) ([]byte, error) {
	return json.Marshal(copyBlocks(chain))
}

// EncodePool marshals the pool into its persisted record.
func EncodePool(pool []Tx) ([]byte, error) {
	return json.Marshal(copyTrans(pool))
}

// DecodeChain unmarshals and validates a chain record. A chain record
// must hold at least the genesis block.
func DecodeChain(data []byte) ([]Block, error) {
	var recs []blockRecord
	if err := decode(data, &recs); err != nil {
		return nil, &ParseError{Record: RecordChain, Err: err}
	}

	if len(recs) == 0 {
		return nil, &ParseError{Record: RecordChain, Err: errors.New("chain holds no blocks")}
	}

	chain := make([]Block, len(recs))
	for i, rec := range recs {
		if err := validate.Check(rec); err != nil {
			return nil, &ParseError{Record: RecordChain, Err: fmt.Errorf("block %d: %w", i, err)}
		}
		chain[i] = rec.toBlock()
	}

	return chain, nil
}

// DecodePool unmarshals and validates a pool record.
func DecodePool(data []byte) ([]Tx, error) {
	var recs []txRecord
	if err := decode(data, &recs); err != nil {
		return nil, &ParseError{Record: RecordPool, Err: err}
	}

	if recs == nil {
		return nil, &ParseError{Record: RecordPool, Err: errors.New("pool is not a list")}
	}

	pool := make([]Tx, len(recs))
	for i, rec := range recs {
		if err := validate.Check(rec); err != nil {
			return nil, &ParseError{Record: RecordPool, Err: fmt.Errorf("transaction %d: %w", i, err)}
		}
		pool[i] = rec.toTx()
	}

	return pool, nil
}

// decode unmarshals a single JSON value, rejecting unknown fields and
// trailing data.
func decode(data []byte, v any) error {
	d := json.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()

	if err := d.Decode(v); err != nil {
		return err
	}

	if d.More() {
		return errors.New("unexpected data after record")
	}

	return nil
}
