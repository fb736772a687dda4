// Package private maintains the group of handlers for node to node access.
package private

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/luxchain/ledger/foundation/blockchain/peer"
	"github.com/luxchain/ledger/foundation/blockchain/state"
	"github.com/luxchain/ledger/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of node to node endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

// Status returns the current status of the node.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	latest := h.State.RetrieveLatestBlock()

	resp := status{
		LatestBlockHash:   latest.Hash(),
		LatestBlockNumber: latest.Number,
		Uncommitted:       h.State.QueryMempoolLength(),
		KnownPeers:        h.State.RetrieveKnownPeers(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// PeerList returns the set of peers registered with this node.
func (h Handlers) PeerList(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.State.RetrieveKnownPeers(), http.StatusOK)
}

// RegisterPeer adds a node to the known peer set. Registering a peer twice
// reports added false, the set is unchanged.
func (h Handlers) RegisterPeer(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var app registerPeer
	if err := web.Decode(r, &app); err != nil {
		return err
	}

	added := h.State.RegisterNode(peer.New(app.ID, app.Host))

	h.Log.Infow("register peer", "traceid", v.TraceID, "id", app.ID, "host", app.Host, "added", added)

	resp := registerResult{
		Added:      added,
		KnownPeers: h.State.RetrieveKnownPeers(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// ChainList streams every block from genesis through the current head as a
// JSON array. Blocks are read from storage one at a time, the full chain is
// never materialized in memory.
func (h Handlers) ChainList(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := web.SetStatusCode(ctx, http.StatusOK); err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("[")); err != nil {
		return err
	}

	encoder := json.NewEncoder(w)

	first := true
	iter := h.State.ForEachBlock()
	for blk, err := iter.Next(); !iter.Done(); blk, err = iter.Next() {
		if err != nil {
			return err
		}

		if !first {
			if _, err := w.Write([]byte(",")); err != nil {
				return err
			}
		}
		first = false

		if err := encoder.Encode(blk); err != nil {
			return err
		}
	}

	if _, err := w.Write([]byte("]")); err != nil {
		return err
	}

	return nil
}

// SubmitChains runs consensus resolution over the specified candidate
// chains, adopting the best candidate when it beats the local chain.
func (h Handlers) SubmitChains(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var app submitChains
	if err := web.Decode(r, &app); err != nil {
		return err
	}

	replaced, err := h.State.ResolveConsensus(app.Chains)
	if err != nil {
		return err
	}

	latest := h.State.RetrieveLatestBlock()

	h.Log.Infow("consensus", "traceid", v.TraceID, "candidates", len(app.Chains), "replaced", replaced, "head", latest.Number)

	resp := consensusResult{
		Replaced:          replaced,
		LatestBlockHash:   latest.Hash(),
		LatestBlockNumber: latest.Number,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
