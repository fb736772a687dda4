package state

import (
	"github.com/luxchain/ledger/foundation/blockchain/database"
	"github.com/luxchain/ledger/foundation/blockchain/peer"
)

// SubmitTransaction adds the transaction to the mempool for inclusion in
// the next mined block and returns the new mempool length. No balance or
// format checking happens at submission, the chain records what was asked
// of it.
func (s *State) SubmitTransaction(tx database.Tx) int {
	s.evHandler("state: SubmitTransaction: from[%s] to[%s] value[%d]", tx.From, tx.To, tx.Value)

	return s.mempool.Submit(tx)
}

// RegisterNode records the peer in the known peer set. The report is false
// when the peer was already registered.
func (s *State) RegisterNode(p peer.Peer) bool {
	added := s.knownPeers.Add(p)
	if added {
		s.evHandler("state: RegisterNode: id[%s] host[%s]", p.ID, p.Host)
	}

	return added
}
