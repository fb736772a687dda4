package state

import (
	"github.com/luxchain/ledger/foundation/blockchain/database"
	"github.com/luxchain/ledger/foundation/blockchain/genesis"
	"github.com/luxchain/ledger/foundation/blockchain/peer"
)

// RetrieveGenesis returns a copy of the chain settings.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveHost returns a copy of the host information.
func (s *State) RetrieveHost() string {
	return s.host
}

// RetrieveBeneficiaryID returns the account that receives mining rewards
// on this node.
func (s *State) RetrieveBeneficiaryID() database.AccountID {
	return s.beneficiaryID
}

// RetrieveLatestBlock returns a copy of the current latest block.
func (s *State) RetrieveLatestBlock() database.Block {
	return s.db.LatestBlock()
}

// RetrieveMempool returns a copy of the mempool in arrival order.
func (s *State) RetrieveMempool() []database.Tx {
	return s.mempool.Copy()
}

// RetrieveKnownPeers retrieves a copy of the known peer list.
func (s *State) RetrieveKnownPeers() []peer.Peer {
	return s.knownPeers.Copy()
}

// RetrieveWindow returns a copy of the in-memory block window, oldest
// first.
func (s *State) RetrieveWindow() []database.Block {
	return s.db.CopyWindow()
}
