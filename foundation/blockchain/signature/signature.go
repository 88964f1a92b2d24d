// Package signature hashes ledger values and signs them with secp256k1
// keys. Signatures travel as 0x prefixed hex strings of 65 bytes, R|S|V,
// where V carries the ledger id on top of the recovery id.
package signature

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ZeroHash is returned by Hash when the value can't be marshaled.
const ZeroHash string = "0x0000000000000000000000000000000000000000000000000000000000000000"

// ledgerID is added to the recovery id so signatures minted for this ledger
// can't be mistaken for Ethereum (27) or Bitcoin signatures.
const ledgerID = 29

// ledgerPrefix is mixed into every digest that gets signed.
var ledgerPrefix = []byte("\x19Ledger Signed Message:\n32")

// ErrInvalidSignature is returned when a signature can't be decoded or
// doesn't belong to the claimed signer.
var ErrInvalidSignature = errors.New("invalid signature")

// =============================================================================

// Hash returns the 0x prefixed sha256 of the JSON form of the value. It is
// the digest used to link blocks together.
func Hash(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ZeroHash
	}

	sum := sha256.Sum256(data)
	return hexutil.Encode(sum[:])
}

// Sign signs the value with the private key and returns the encoded
// signature.
func Sign(value any, privateKey *ecdsa.PrivateKey) (string, error) {
	digest, err := digestOf(value)
	if err != nil {
		return "", err
	}

	raw, err := crypto.Sign(digest, privateKey)
	if err != nil {
		return "", err
	}

	sig := Signature{
		R:        new(big.Int).SetBytes(raw[:32]),
		S:        new(big.Int).SetBytes(raw[32:64]),
		Recovery: raw[64],
	}

	// A signature we can't recover ourselves is never handed out.
	if _, err := sig.Signer(value); err != nil {
		return "", err
	}

	return sig.String(), nil
}

// Verify checks the encoded signature was produced over the value by the
// account with the specified address.
func Verify(value any, encoded string, address string) error {
	sig, err := Decode(encoded)
	if err != nil {
		return err
	}

	signer, err := sig.Signer(value)
	if err != nil {
		return err
	}

	if !strings.EqualFold(signer, address) {
		return fmt.Errorf("%w: signed by %s, claimed %s", ErrInvalidSignature, signer, address)
	}

	return nil
}

// =============================================================================

// Signature is a decoded secp256k1 signature. Recovery is the raw recovery
// id, 0 or 1, without the ledger id.
type Signature struct {
	R        *big.Int
	S        *big.Int
	Recovery byte
}

// Decode parses an encoded signature and checks its values are in range.
func Decode(encoded string) (Signature, error) {
	raw, err := hexutil.Decode(encoded)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	if len(raw) != crypto.SignatureLength {
		return Signature{}, fmt.Errorf("%w: length %d", ErrInvalidSignature, len(raw))
	}

	if raw[64] < ledgerID {
		return Signature{}, fmt.Errorf("%w: recovery id", ErrInvalidSignature)
	}

	sig := Signature{
		R:        new(big.Int).SetBytes(raw[:32]),
		S:        new(big.Int).SetBytes(raw[32:64]),
		Recovery: raw[64] - ledgerID,
	}

	if sig.Recovery > 1 {
		return Signature{}, fmt.Errorf("%w: recovery id", ErrInvalidSignature)
	}

	if !crypto.ValidateSignatureValues(sig.Recovery, sig.R, sig.S, false) {
		return Signature{}, fmt.Errorf("%w: signature values", ErrInvalidSignature)
	}

	return sig, nil
}

// String returns the 0x prefixed hex encoding carried by transactions.
func (sig Signature) String() string {
	raw := sig.bytes()
	raw[64] += ledgerID

	return hexutil.Encode(raw)
}

// Signer recovers the address of the account that signed the value. The
// exact value that was signed must be provided or a different address
// comes back.
func (sig Signature) Signer(value any) (string, error) {
	digest, err := digestOf(value)
	if err != nil {
		return "", err
	}

	publicKey, err := crypto.SigToPub(digest, sig.bytes())
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	return crypto.PubkeyToAddress(*publicKey).String(), nil
}

// bytes returns the 65 byte R|S|V form expected by go-ethereum.
func (sig Signature) bytes() []byte {
	raw := make([]byte, crypto.SignatureLength)

	sig.R.FillBytes(raw[:32])
	sig.S.FillBytes(raw[32:64])
	raw[64] = sig.Recovery

	return raw
}

// =============================================================================

// digestOf returns the 32 byte keccak digest that gets signed: the keccak
// of the JSON form of the value, hashed again behind the ledger prefix.
func digestOf(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	return crypto.Keccak256(ledgerPrefix, crypto.Keccak256(data)), nil
}
