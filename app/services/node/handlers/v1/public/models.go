package public

import (
	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/nameservice"
)

// submitTx is the payload of a transaction submitted by a wallet. A
// missing amount defaults to state.DefaultAmount.
type submitTx struct {
	Sender    string   `json:"sender" validate:"required"`
	Recipient string   `json:"recipient" validate:"required"`
	Signature string   `json:"signature"`
	Amount    *float64 `json:"amount" validate:"omitempty,gte=0"`
}

type tx struct {
	Sender        database.AccountID `json:"sender"`
	SenderName    string             `json:"sender_name"`
	Recipient     database.AccountID `json:"recipient"`
	RecipientName string             `json:"recipient_name"`
	Signature     string             `json:"signature"`
	Amount        float64            `json:"amount"`
}

type block struct {
	Index        uint64 `json:"index"`
	Hash         string `json:"hash"`
	PreviousHash string `json:"previous_hash"`
	Proof        uint64 `json:"proof"`
	TimeStamp    uint64 `json:"timestamp"`
	Transactions []tx   `json:"transactions"`
}

type balance struct {
	Account database.AccountID `json:"account"`
	Name    string             `json:"name"`
	Balance float64            `json:"balance"`
}

type status struct {
	HostingNode  string  `json:"hosting_node"`
	Blocks       int     `json:"blocks"`
	LatestHash   string  `json:"latest_hash"`
	Pending      int     `json:"pending"`
	MiningReward float64 `json:"mining_reward"`
	Mining       bool    `json:"background_mining"`
}

// =============================================================================

func toTx(ns *nameservice.NameService, t database.Tx) tx {
	return tx{
		Sender:        t.Sender,
		SenderName:    ns.Lookup(t.Sender),
		Recipient:     t.Recipient,
		RecipientName: ns.Lookup(t.Recipient),
		Signature:     t.Signature,
		Amount:        t.Amount,
	}
}

func toTxs(ns *nameservice.NameService, trans []database.Tx) []tx {
	out := make([]tx, len(trans))
	for i, t := range trans {
		out[i] = toTx(ns, t)
	}
	return out
}

func toBlock(ns *nameservice.NameService, b database.Block) block {
	return block{
		Index:        b.Index,
		Hash:         b.Hash(),
		PreviousHash: b.PreviousHash,
		Proof:        b.Proof,
		TimeStamp:    b.TimeStamp,
		Transactions: toTxs(ns, b.Transactions),
	}
}
