// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/luxchain/ledger/foundation/blockchain/database"
	"github.com/luxchain/ledger/foundation/blockchain/filter"
	"github.com/luxchain/ledger/foundation/blockchain/state"
	"github.com/luxchain/ledger/foundation/events"
	"github.com/luxchain/ledger/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of public endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
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

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	// The ping keeps the connection alive through idle stretches.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// Genesis returns the chain settings.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.RetrieveGenesis()

	return web.Respond(ctx, w, gen, http.StatusOK)
}

// Balances returns the current balance for every known account, or for the
// one account specified on the path.
func (h Handlers) Balances(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	account := web.Param(r, "account")

	var bals []balance
	switch account {
	case "":
		for accountID, value := range h.State.QueryBalances() {
			bals = append(bals, balance{Account: accountID, Balance: value})
		}
		sort.Slice(bals, func(i, j int) bool { return bals[i].Account < bals[j].Account })

	default:
		accountID := database.AccountID(account)
		bals = append(bals, balance{Account: accountID, Balance: h.State.QueryBalance(accountID)})
	}

	resp := balances{
		LatestBlock: h.State.RetrieveLatestBlock().Hash(),
		Uncommitted: h.State.QueryMempoolLength(),
		Balances:    bals,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Mempool returns the set of uncommitted transactions in arrival order.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	txs := h.State.RetrieveMempool()

	return web.Respond(ctx, w, txs, http.StatusOK)
}

// SubmitTransaction adds a new transaction to the mempool.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var app newTx
	if err := web.Decode(r, &app); err != nil {
		return err
	}

	h.Log.Infow("add tran", "traceid", v.TraceID, "from", app.From, "to", app.To, "value", app.Value)

	tx := database.NewTx(database.AccountID(app.From), database.AccountID(app.To), app.Value)
	count := h.State.SubmitTransaction(tx)

	resp := txStatus{
		Status:      "transaction added to mempool",
		Uncommitted: count,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Mine performs the work to mine the next block from the current mempool
// contents and commits it to the chain.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	blk, err := h.State.ProduceBlock()
	if err != nil {
		return err
	}

	h.Log.Infow("block mined", "traceid", v.TraceID, "block", blk.Number, "trans", len(blk.Trans))

	resp := minedBlock{
		Hash:  blk.Hash(),
		Block: blk,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// BlockWindow returns the blocks currently held in memory, oldest first.
func (h Handlers) BlockWindow(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	window := h.State.RetrieveWindow()

	blocks := make([]block, len(window))
	for i, blk := range window {
		blocks[i] = toBlock(blk)
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// BlocksMatching scans a range of window positions for blocks carrying
// transactions that touch any of the specified accounts.
func (h Handlers) BlocksMatching(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app queryFilter
	if err := web.Decode(r, &app); err != nil {
		return err
	}

	f := filter.New(app.Accounts, app.Hashes)

	resp := matchResult{
		Matches: h.State.BlocksMatching(f, app.Start, app.Depth),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
