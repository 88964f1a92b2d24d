package database

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ardanlabs/blockledger/foundation/blockchain/signature"
)

// Tx is the transactional information between two parties.
type Tx struct {
	Sender    AccountID `json:"sender"`    // Account sending the coins.
	Recipient AccountID `json:"recipient"` // Account receiving the coins.
	Signature string    `json:"signature"` // Hex encoded [R|S|V] signature of the sender.
	Amount    float64   `json:"amount"`    // Number of coins moved by this transaction.
}

// NewTx constructs a new transaction.
func NewTx(sender AccountID, recipient AccountID, sig string, amount float64) Tx {
	return Tx{
		Sender:    sender,
		Recipient: recipient,
		Signature: sig,
		Amount:    amount,
	}
}

// NewRewardTx constructs the transaction that pays the beneficiary for
// mining a block.
func NewRewardTx(beneficiary AccountID, reward float64) Tx {
	return NewTx(MiningAccountID, beneficiary, "", reward)
}

// IsReward reports whether the transaction is a mining reward.
func (tx Tx) IsReward() bool {
	return tx.Sender == MiningAccountID
}

// Sign uses the specified private key to sign the transaction. The sender
// of the returned transaction is the account owning the private key.
func (tx Tx) Sign(privateKey *ecdsa.PrivateKey) (Tx, error) {
	tx.Sender = PublicKeyToAccountID(privateKey.PublicKey)

	sig, err := signature.Sign(tx.payload(), privateKey)
	if err != nil {
		return Tx{}, err
	}
	tx.Signature = sig

	return tx, nil
}

// VerifySignature checks the signature on the transaction belongs to the
// sender and covers the sender, recipient and amount.
func (tx Tx) VerifySignature() error {
	return signature.Verify(tx.payload(), tx.Signature, string(tx.Sender))
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	return fmt.Sprintf("%s->%s:%g", tx.Sender, tx.Recipient, tx.Amount)
}

// payload is the portion of the transaction that is signed.
func (tx Tx) payload() any {
	return struct {
		Sender    AccountID `json:"sender"`
		Recipient AccountID `json:"recipient"`
		Amount    float64   `json:"amount"`
	}{
		Sender:    tx.Sender,
		Recipient: tx.Recipient,
		Amount:    tx.Amount,
	}
}
