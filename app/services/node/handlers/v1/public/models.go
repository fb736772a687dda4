package public

import (
	"github.com/luxchain/ledger/business/sys/validate"
	"github.com/luxchain/ledger/foundation/blockchain/database"
)

// block is the client facing view of a block, the hash rides along.
type block struct {
	Hash          string        `json:"hash"`
	Number        uint64        `json:"number"`
	Trans         []database.Tx `json:"trans"`
	TimeStamp     uint64        `json:"timestamp"`
	Nonce         uint64        `json:"nonce"`
	PrevBlockHash string        `json:"prev_block_hash"`
}

// toBlock constructs the client facing view of the specified block.
func toBlock(dbBlock database.Block) block {
	return block{
		Hash:          dbBlock.Hash(),
		Number:        dbBlock.Number,
		Trans:         dbBlock.Trans,
		TimeStamp:     dbBlock.TimeStamp,
		Nonce:         dbBlock.Nonce,
		PrevBlockHash: dbBlock.PrevBlockHash,
	}
}

// balance is an account and its current balance.
type balance struct {
	Account database.AccountID `json:"account"`
	Balance int64              `json:"balance"`
}

// balances is the response for the balance listing.
type balances struct {
	LatestBlock string    `json:"latest_block"`
	Uncommitted int       `json:"uncommitted"`
	Balances    []balance `json:"balances"`
}

// =============================================================================

// newTx is what clients submit to move value between two accounts.
type newTx struct {
	From  string `json:"from" validate:"required"`
	To    string `json:"to" validate:"required"`
	Value int64  `json:"value"`
}

// Validate checks the data in the model is considered clean.
func (app newTx) Validate() error {
	return validate.Check(app)
}

// txStatus is the response for a transaction submission.
type txStatus struct {
	Status      string `json:"status"`
	Uncommitted int    `json:"uncommitted"`
}

// =============================================================================

// queryFilter describes a probabilistic account scan over a range of window
// positions.
type queryFilter struct {
	Accounts []string `json:"accounts" validate:"required,min=1"`
	Hashes   uint     `json:"hashes"`
	Start    int      `json:"start" validate:"gte=0"`
	Depth    int      `json:"depth" validate:"required,gte=1"`
}

// Validate checks the data in the model is considered clean.
func (app queryFilter) Validate() error {
	return validate.Check(app)
}

// matchResult is the response for a filter query. Positions index the
// window, a listed position may be a false positive.
type matchResult struct {
	Matches []int `json:"matches"`
}

// =============================================================================

// minedBlock is the response for a successful mine call.
type minedBlock struct {
	Hash  string         `json:"hash"`
	Block database.Block `json:"block"`
}
