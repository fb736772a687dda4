// Package state is the core API for the ledger engine and implements all the
// business rules and processing.
package state

import (
	"sync"

	"github.com/luxchain/ledger/foundation/blockchain/database"
	"github.com/luxchain/ledger/foundation/blockchain/genesis"
	"github.com/luxchain/ledger/foundation/blockchain/ledger"
	"github.com/luxchain/ledger/foundation/blockchain/mempool"
	"github.com/luxchain/ledger/foundation/blockchain/peer"
)

// defaultWindowBlocks bounds the in-memory block window when the
// configuration doesn't say otherwise.
const defaultWindowBlocks = 100

// =============================================================================

// EventHandler defines a function that is called when events
// occur in the processing of persisting blocks.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented by any
// package providing support for background processing.
type Worker interface {
	Shutdown()
}

// =============================================================================

// Config represents the configuration required to start
// the blockchain node.
type Config struct {
	BeneficiaryID database.AccountID
	Host          string
	Storage       database.Storage
	Genesis       genesis.Genesis
	WindowBlocks  int
	LoadAllBlocks bool
	MempoolCache  string
	KnownPeers    *peer.PeerSet
	EvHandler     EventHandler
}

// State manages the blockchain database, the mempool, the derived account
// balances and the set of known peers. The mutex is the single mutation
// owner, mining, consensus swaps and shutdown serialize through it.
type State struct {
	mu sync.Mutex

	beneficiaryID database.AccountID
	host          string
	mempoolCache  string
	evHandler     EventHandler

	genesis    genesis.Genesis
	knownPeers *peer.PeerSet
	mempool    *mempool.Mempool
	ledger     *ledger.Ledger
	db         *database.Database

	Worker Worker
}

// New constructs a new state for data management.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	windowBlocks := cfg.WindowBlocks
	if windowBlocks <= 0 {
		windowBlocks = defaultWindowBlocks
	}

	knownPeers := cfg.KnownPeers
	if knownPeers == nil {
		knownPeers = peer.NewPeerSet()
	}

	// Access the chain held in storage, seeding a fresh store with the
	// genesis block.
	db, err := database.New(cfg.Genesis, cfg.Storage, windowBlocks, cfg.LoadAllBlocks, ev)
	if err != nil {
		return nil, err
	}

	// Rebuild the balances by replaying the full persisted history. The
	// window alone is not enough, evicted blocks carry balance changes too.
	ldgr := ledger.New()

	iter := db.ForEach()
	for block, err := iter.Next(); !iter.Done(); block, err = iter.Next() {
		if err != nil {
			return nil, err
		}

		ldgr.ApplyBlock(block)
	}

	// Restore the mempool from its cache file when one is configured. The
	// cache is best effort, an unreadable file means starting empty.
	mpool := mempool.New()
	if cfg.MempoolCache != "" {
		txs, err := mempool.LoadCache(cfg.MempoolCache)
		if err != nil {
			ev("state: New: WARNING: mempool cache unreadable: %s: starting empty", err)
		}
		for _, tx := range txs {
			mpool.Submit(tx)
		}
	}

	state := State{
		beneficiaryID: cfg.BeneficiaryID,
		host:          cfg.Host,
		mempoolCache:  cfg.MempoolCache,
		evHandler:     ev,
		genesis:       cfg.Genesis,
		knownPeers:    knownPeers,
		mempool:       mpool,
		ledger:        ldgr,
		db:            db,
	}

	return &state, nil
}

// Shutdown cleanly brings the node down. The mempool and the chain window
// are flushed before the storage is released.
func (s *State) Shutdown() error {
	s.evHandler("state: Shutdown: started")
	defer s.evHandler("state: Shutdown: completed")

	// Stop the background processing first.
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	// Wait for any in-flight mutation to finish.
	s.mu.Lock()
	defer s.mu.Unlock()

	defer s.db.Close()

	if err := s.CacheMempool(); err != nil {
		s.evHandler("state: Shutdown: WARNING: mempool cache not written: %s", err)
	}

	if err := s.db.Persist(); err != nil {
		return err
	}

	return nil
}

// CacheMempool writes the current mempool snapshot to the node's cache
// file. With no cache file configured this is a no op.
func (s *State) CacheMempool() error {
	if s.mempoolCache == "" {
		return nil
	}

	return s.mempool.SaveCache(s.mempoolCache)
}
