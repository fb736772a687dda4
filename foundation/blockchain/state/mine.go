package state

import (
	"github.com/luxchain/ledger/foundation/blockchain/database"
)

// ProduceBlock mines the next block from the current mempool contents and
// commits it to the chain. The reward transaction leads the block, the
// mempool snapshot follows in arrival order. Appending the block, applying
// its transactions to the balances, clearing the mempool and persisting the
// chain happen as one unit under the state mutex. A failed attempt leaves
// the mempool contents in place.
func (s *State) ProduceBlock() (database.Block, error) {
	s.evHandler("state: ProduceBlock: started")
	defer s.evHandler("state: ProduceBlock: completed")

	s.mu.Lock()
	defer s.mu.Unlock()

	trans := []database.Tx{database.NewTx(
		database.AccountID(s.genesis.CoinbaseAccount),
		s.beneficiaryID,
		s.genesis.MiningReward,
	)}
	trans = append(trans, s.mempool.Copy()...)

	block := database.POW(database.POWArgs{
		Difficulty: s.genesis.Difficulty,
		PrevBlock:  s.db.LatestBlock(),
		Trans:      trans,
		EvHandler:  s.evHandler,
	})

	if err := s.db.Append(block); err != nil {
		return database.Block{}, err
	}

	s.ledger.ApplyBlock(block)
	s.mempool.Truncate()

	if err := s.db.Persist(); err != nil {
		return database.Block{}, err
	}

	s.evHandler("state: ProduceBlock: block[%d] committed: trans[%d]", block.Number, len(block.Trans))

	return block, nil
}
