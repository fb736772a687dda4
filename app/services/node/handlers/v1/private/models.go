package private

import (
	"github.com/luxchain/ledger/business/sys/validate"
	"github.com/luxchain/ledger/foundation/blockchain/database"
	"github.com/luxchain/ledger/foundation/blockchain/peer"
)

// status describes this node's view of the chain and its peers.
type status struct {
	LatestBlockHash   string      `json:"latest_block_hash"`
	LatestBlockNumber uint64      `json:"latest_block_number"`
	Uncommitted       int         `json:"uncommitted"`
	KnownPeers        []peer.Peer `json:"known_peers"`
}

// =============================================================================

// registerPeer is what a node submits to join the peer set.
type registerPeer struct {
	ID   string `json:"id" validate:"required"`
	Host string `json:"host" validate:"required"`
}

// Validate checks the data in the model is considered clean.
func (app registerPeer) Validate() error {
	return validate.Check(app)
}

// registerResult is the response for a peer registration.
type registerResult struct {
	Added      bool        `json:"added"`
	KnownPeers []peer.Peer `json:"known_peers"`
}

// =============================================================================

// submitChains carries candidate chains for consensus resolution. Every
// candidate must be a full chain starting at the genesis block.
type submitChains struct {
	Chains [][]database.Block `json:"chains" validate:"required,min=1"`
}

// Validate checks the data in the model is considered clean.
func (app submitChains) Validate() error {
	return validate.Check(app)
}

// consensusResult reports whether the local chain was replaced.
type consensusResult struct {
	Replaced          bool   `json:"replaced"`
	LatestBlockHash   string `json:"latest_block_hash"`
	LatestBlockNumber uint64 `json:"latest_block_number"`
}
