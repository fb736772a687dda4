// Package mempool maintains the pool of transactions waiting to be mined
// into a block. Arrival order is the mining order.
package mempool

import (
	"sync"

	"github.com/luxchain/ledger/foundation/blockchain/database"
)

// Mempool represents a pool of transactions ordered by arrival. The pool
// performs no validation and no deduplication, every submitted transaction
// is accepted.
type Mempool struct {
	mu   sync.RWMutex
	pool []database.Tx
}

// New constructs a new mempool for use.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Submit adds the transaction to the end of the pool and returns the new
// pool length.
func (mp *Mempool) Submit(tx database.Tx) int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)

	return len(mp.pool)
}

// Copy makes a copy of the pool contents in arrival order.
func (mp *Mempool) Copy() []database.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	pool := make([]database.Tx, len(mp.pool))
	copy(pool, mp.pool)

	return pool
}

// Truncate clears the pool after its contents have been mined.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = nil
}
