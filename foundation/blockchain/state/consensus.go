package state

import (
	"github.com/luxchain/ledger/foundation/blockchain/database"
)

// ResolveConsensus examines the candidate chains and adopts the best one
// when it beats the local chain. The rule is longest valid chain, measured
// by length alone. Equal length candidates never win, the first valid
// candidate of the greatest length is the one considered. The report is
// true when the local chain was replaced.
func (s *State) ResolveConsensus(candidates [][]database.Block) (bool, error) {
	s.evHandler("state: ResolveConsensus: started: candidates[%d]", len(candidates))
	defer s.evHandler("state: ResolveConsensus: completed")

	s.mu.Lock()
	defer s.mu.Unlock()

	// Strict greater-than keeps the first seen of any equal-length group.
	var best []database.Block
	for i, candidate := range candidates {
		if len(candidate) <= len(best) {
			continue
		}

		if !database.VerifyChain(candidate, s.genesis.Difficulty, false, s.evHandler) {
			s.evHandler("state: ResolveConsensus: candidate[%d] rejected", i)
			continue
		}

		best = candidate
	}

	if best == nil {
		s.evHandler("state: ResolveConsensus: no valid candidates: keeping local chain")
		return false, nil
	}

	// The local chain stays unless the candidate is strictly longer or the
	// local chain no longer verifies in full.
	localLength := s.db.BlockCount() + 1
	if uint64(len(best)) <= localLength && s.verifyLocalChain() {
		s.evHandler("state: ResolveConsensus: keeping local chain: length[%d]", localLength)
		return false, nil
	}

	if err := s.db.ReplaceChain(best); err != nil {
		return false, err
	}

	// The balances must reflect the adopted history.
	s.ledger.Reset()

	iter := s.db.ForEach()
	for block, err := iter.Next(); !iter.Done(); block, err = iter.Next() {
		if err != nil {
			return true, err
		}

		s.ledger.ApplyBlock(block)
	}

	s.evHandler("state: ResolveConsensus: adopted chain: length[%d]", len(best))

	return true, nil
}

// verifyLocalChain materializes the full persisted chain and runs a full
// verification over it.
func (s *State) verifyLocalChain() bool {
	var chain []database.Block

	iter := s.db.ForEach()
	for block, err := iter.Next(); !iter.Done(); block, err = iter.Next() {
		if err != nil {
			s.evHandler("state: verifyLocalChain: read failed: %s", err)
			return false
		}

		chain = append(chain, block)
	}

	return database.VerifyChain(chain, s.genesis.Difficulty, false, s.evHandler)
}
