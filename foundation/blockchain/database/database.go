// Package database handles all the lower level support for maintaining the
// blockchain, keeping a bounded window of recent blocks in memory over a
// durable key-value store.
package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/luxchain/ledger/foundation/blockchain/genesis"
)

// Keys used in the underlying store. Block records carry their block number
// as a suffix, block0, block1, and so on.
const (
	blockCountKey  = "blockCount"
	blockKeyPrefix = "block"
)

// ErrNotFound is returned by Storage implementations when the requested key
// is absent. Absence is an expected signal, not a fault.
var ErrNotFound = errors.New("not found")

// Storage interface represents the behavior required to be implemented by
// any package providing durable key-value support for the chain.
type Storage interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
	Close() error
}

// =============================================================================

// Database manages data related to the blockchain. The most recent
// windowBlocks blocks are kept in memory and every block back to zero stays
// recoverable from storage.
type Database struct {
	mu           sync.RWMutex
	genesis      genesis.Genesis
	storage      Storage
	windowBlocks int
	window       []Block // Most recent blocks, oldest first.
	blockCount   uint64  // Highest block number written, the value kept under the blockCount key.
	evHandler    func(v string, args ...any)
}

// New constructs a new database to manage the chain, initializing the
// in-memory window from storage. A fresh store is seeded with the genesis
// block. A store whose records cannot be read or decoded falls back to a
// genesis-only chain, the condition is logged and never raised.
func New(genesis genesis.Genesis, strg Storage, windowBlocks int, loadAll bool, ev func(v string, args ...any)) (*Database, error) {
	db := Database{
		genesis:      genesis,
		storage:      strg,
		windowBlocks: windowBlocks,
		evHandler:    ev,
	}

	if err := db.load(loadAll); err != nil {
		return nil, err
	}

	return &db, nil
}

// Close releases the underlying storage.
func (db *Database) Close() error {
	return db.storage.Close()
}

// =============================================================================

// load initializes the window and block count from storage. All corruption
// paths land on a freshly persisted genesis-only chain.
func (db *Database) load(loadAll bool) error {
	count, err := db.readBlockCount()

	switch {
	case errors.Is(err, ErrNotFound):
		db.evHandler("database: load: no chain in storage: starting from genesis")
		return db.reset()

	case err != nil:
		db.evHandler("database: load: WARNING: block count unreadable: %s: starting from genesis", err)
		return db.reset()
	}

	start := uint64(0)
	if !loadAll && count+1 > uint64(db.windowBlocks) {
		start = count + 1 - uint64(db.windowBlocks)
	}

	var window []Block
	for num := start; num <= count; num++ {
		block, err := db.GetBlock(num)

		switch {
		case errors.Is(err, ErrNotFound):
			db.evHandler("database: load: WARNING: block%d missing: skipping", num)
			continue

		case err != nil:
			db.evHandler("database: load: WARNING: block%d unreadable: %s: starting from genesis", num, err)
			return db.reset()
		}

		window = append(window, block)
	}

	if len(window) == 0 {
		db.evHandler("database: load: WARNING: no readable blocks: starting from genesis")
		return db.reset()
	}

	db.window = window
	db.blockCount = count

	if !VerifyChain(window, db.genesis.Difficulty, true, db.evHandler) {
		db.evHandler("database: load: WARNING: loaded window failed verification")
	}

	return nil
}

// reset puts the chain back to a persisted genesis-only state.
func (db *Database) reset() error {
	db.window = []Block{GenesisBlock()}
	db.blockCount = 0

	return db.persist()
}

// =============================================================================

// Persist flushes the in-memory window and the block count to storage.
func (db *Database) Persist() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	return db.persist()
}

// persist writes every block in the window to its keyed record and the
// count record last, so a failure part way through leaves the old count
// pointing at fully written records. Callers must hold the mutex.
func (db *Database) persist() error {
	for _, block := range db.window {
		if err := db.putBlock(block); err != nil {
			return err
		}
	}

	return db.writeBlockCount(db.blockCount)
}

// Append adds the block to the end of the in-memory window. When the window
// grows past its bound the chain is persisted and the oldest blocks are
// evicted from memory. Evicted blocks remain readable from storage.
func (db *Database) Append(block Block) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.window = append(db.window, block)
	if block.Number > db.blockCount {
		db.blockCount = block.Number
	}

	if len(db.window) > db.windowBlocks {
		if err := db.persist(); err != nil {
			return err
		}
		db.window = db.window[len(db.window)-db.windowBlocks:]
	}

	return nil
}

// ReplaceChain swaps the stored chain for the specified one. Every block is
// written to its keyed record, the count record is moved to the new head,
// and the in-memory window is rebuilt from the tail of the new chain.
func (db *Database) ReplaceChain(chain []Block) error {
	if len(chain) == 0 {
		return errors.New("replacement chain is empty")
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	for _, block := range chain {
		if err := db.putBlock(block); err != nil {
			return err
		}
	}

	count := chain[len(chain)-1].Number
	if err := db.writeBlockCount(count); err != nil {
		return err
	}
	db.blockCount = count

	start := 0
	if len(chain) > db.windowBlocks {
		start = len(chain) - db.windowBlocks
	}
	window := make([]Block, len(chain)-start)
	copy(window, chain[start:])
	db.window = window

	return nil
}

// =============================================================================

// LatestBlock returns the block at the head of the chain.
func (db *Database) LatestBlock() Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.window[len(db.window)-1]
}

// BlockCount returns the highest block number written to the chain.
func (db *Database) BlockCount() uint64 {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.blockCount
}

// CopyWindow makes a copy of the in-memory block window, oldest first.
func (db *Database) CopyWindow() []Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	window := make([]Block, len(db.window))
	copy(window, db.window)

	return window
}

// GetBlock reads the specified block from storage by number, independent of
// the in-memory window.
func (db *Database) GetBlock(num uint64) (Block, error) {
	data, err := db.storage.Get(blockKey(num))
	if err != nil {
		return Block{}, err
	}

	var block Block
	if err := json.Unmarshal(data, &block); err != nil {
		return Block{}, fmt.Errorf("decoding block%d: %w", num, err)
	}

	return block, nil
}

// =============================================================================

// ForEach returns an iterator to walk the persisted chain from block zero
// through the current head, reading directly from storage.
func (db *Database) ForEach() Iterator {
	return Iterator{db: db, end: db.BlockCount()}
}

// Iterator provides a cursor over the persisted chain. Every ForEach call
// yields an independent cursor positioned at block zero.
type Iterator struct {
	db   *Database // Access to the database API.
	next uint64    // Next block number to read.
	end  uint64    // Highest block number the cursor will read.
	eoc  bool      // Represents the iterator is at the end of the chain.
}

// Next retrieves the next block from storage.
func (it *Iterator) Next() (Block, error) {
	if it.next > it.end {
		it.eoc = true
		return Block{}, errors.New("end of chain")
	}

	block, err := it.db.GetBlock(it.next)
	if err != nil {
		return Block{}, err
	}

	it.next++

	return block, nil
}

// Done returns the end of chain value.
func (it *Iterator) Done() bool {
	return it.eoc
}

// =============================================================================

// putBlock writes the block to its keyed record in storage.
func (db *Database) putBlock(block Block) error {
	data, err := json.Marshal(block)
	if err != nil {
		return fmt.Errorf("encoding block%d: %w", block.Number, err)
	}

	if err := db.storage.Put(blockKey(block.Number), data); err != nil {
		return fmt.Errorf("writing block%d: %w", block.Number, err)
	}

	return nil
}

// readBlockCount reads and decodes the count record from storage.
func (db *Database) readBlockCount() (uint64, error) {
	data, err := db.storage.Get(blockCountKey)
	if err != nil {
		return 0, err
	}

	var count uint64
	if err := json.Unmarshal(data, &count); err != nil {
		return 0, fmt.Errorf("decoding block count: %w", err)
	}

	return count, nil
}

// writeBlockCount encodes and writes the count record to storage.
func (db *Database) writeBlockCount(count uint64) error {
	data, err := json.Marshal(count)
	if err != nil {
		return fmt.Errorf("encoding block count: %w", err)
	}

	if err := db.storage.Put(blockCountKey, data); err != nil {
		return fmt.Errorf("writing block count: %w", err)
	}

	return nil
}

// blockKey returns the storage key for the specified block number.
func blockKey(num uint64) string {
	return fmt.Sprintf("%s%d", blockKeyPrefix, num)
}
