// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"errors"
	"net/http"
	"time"

	v1 "github.com/ardanlabs/blockledger/business/web/v1"
	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/blockchain/state"
	"github.com/ardanlabs/blockledger/foundation/events"
	"github.com/ardanlabs/blockledger/foundation/nameservice"
	"github.com/ardanlabs/blockledger/foundation/validate"
	"github.com/ardanlabs/blockledger/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	NS    *nameservice.NameService
	WS    websocket.Upgrader
	Evts  *events.Events
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Subscribe(v.TraceID)
	defer h.Evts.Unsubscribe(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return nil
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// SubmitTransaction adds a signed wallet transaction to the pool.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var sub submitTx
	if err := web.Decode(r, &sub); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validate.Check(sub); err != nil {
		return err
	}

	amount := state.DefaultAmount
	if sub.Amount != nil {
		amount = *sub.Amount
	}

	h.Log.Infow("submit tran", "traceid", v.TraceID, "sender", sub.Sender, "recipient", sub.Recipient, "amount", amount)

	err = h.State.AddTransaction(database.AccountID(sub.Recipient), database.AccountID(sub.Sender), sub.Signature, amount)
	if err != nil {
		if errors.Is(err, state.ErrTransactionRejected) {
			return v1.NewRequestError(err, http.StatusBadRequest)
		}
		return err
	}

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "transaction added to pool",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Mempool returns the set of uncommitted transactions.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, toTxs(h.NS, h.State.OpenTransactions()), http.StatusOK)
}

// Mine mines the pending transactions into a new block.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blk, err := h.State.MineBlock()
	if err != nil {
		if errors.Is(err, state.ErrMiningAborted) {
			return v1.NewRequestError(err, http.StatusConflict)
		}
		return err
	}

	return web.Respond(ctx, w, toBlock(h.NS, blk), http.StatusOK)
}

// SignalMining asks the background worker to mine the pending
// transactions now.
func (h Handlers) SignalMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if h.State.Worker == nil {
		return v1.NewRequestError(errors.New("background mining is disabled"), http.StatusConflict)
	}

	h.State.Worker.SignalStartMining()

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "mining signalled",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Balance returns the balance of the hosting node, or of the account
// named in the path.
func (h Handlers) Balance(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var account database.AccountID
	var bal float64

	switch param := web.Param(r, "account"); param {
	case "":
		var err error
		if bal, err = h.State.Balance(); err != nil {
			return err
		}
		account, _ = h.State.RetrieveHostingNode().Account()

	default:
		var err error
		if account, err = h.NS.Resolve(param); err != nil {
			return v1.NewRequestError(err, http.StatusBadRequest)
		}
		bal = h.State.QueryBalance(account)
	}

	resp := balance{
		Account: account,
		Name:    h.NS.Lookup(account),
		Balance: bal,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Blocks returns the whole chain.
func (h Handlers) Blocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	chain := h.State.Chain()

	out := make([]block, len(chain))
	for i, b := range chain {
		out[i] = toBlock(h.NS, b)
	}

	return web.Respond(ctx, w, out, http.StatusOK)
}

// Status returns a summary of the node.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	latest := h.State.LatestBlock()

	resp := status{
		HostingNode:  h.State.RetrieveHostingNode().String(),
		Blocks:       int(latest.Index) + 1,
		LatestHash:   latest.Hash(),
		Pending:      len(h.State.OpenTransactions()),
		MiningReward: h.State.RetrieveGenesis().MiningReward,
		Mining:       h.State.Worker != nil,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
