// Package ledger maintains the account balances derived from the chain.
package ledger

import (
	"sync"

	"github.com/luxchain/ledger/foundation/blockchain/database"
)

// Ledger manages the balance of every account seen in a transaction. The
// balances are pure derived state, the chain itself is the authority.
type Ledger struct {
	mu       sync.RWMutex
	balances map[database.AccountID]int64
}

// New constructs an empty ledger.
func New() *Ledger {
	return &Ledger{
		balances: make(map[database.AccountID]int64),
	}
}

// ApplyBlock applies every transaction in the block to the balances, in
// block order.
func (l *Ledger) ApplyBlock(block database.Block) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, tx := range block.Trans {
		l.applyTransaction(tx)
	}
}

// applyTransaction debits the sender and credits the recipient by the same
// amount. Overdraft is allowed, balances go negative rather than blocking a
// mined transaction. Callers must hold the mutex.
func (l *Ledger) applyTransaction(tx database.Tx) {
	l.balances[tx.From] -= tx.Value
	l.balances[tx.To] += tx.Value
}

// Balance returns the balance for the specified account. An account that
// has never transacted has a zero balance.
func (l *Ledger) Balance(accountID database.AccountID) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.balances[accountID]
}

// Copy makes a copy of the current balances.
func (l *Ledger) Copy() map[database.AccountID]int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	balances := make(map[database.AccountID]int64, len(l.balances))
	for accountID, balance := range l.balances {
		balances[accountID] = balance
	}

	return balances
}

// Reset drops every balance so the ledger can be rebuilt from a new chain.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.balances = make(map[database.AccountID]int64)
}
