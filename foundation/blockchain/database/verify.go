package database

import (
	"errors"
	"fmt"
)

// VerifyChain reports whether the specified chain satisfies the chain rules.
// A full verification requires the chain to start at the genesis block and
// carry position-matched block numbers. A partial verification skips those
// two checks so a windowed tail of a chain can be checked on its own. Every
// violation is reported through the event handler, a false result is an
// answer, not a failure.
func VerifyChain(chain []Block, difficulty uint16, partial bool, ev func(v string, args ...any)) bool {
	if err := verifyChain(chain, difficulty, partial); err != nil {
		ev("database: VerifyChain: chain rejected: %s", err)
		return false
	}

	return true
}

// verifyChain walks the chain applying the linkage and work rules.
func verifyChain(chain []Block, difficulty uint16, partial bool) error {
	if len(chain) == 0 {
		return errors.New("chain is empty")
	}

	if !partial {
		if chain[0].Hash() != GenesisBlock().Hash() {
			return errors.New("block at position 0 is not the genesis block")
		}

		for i := range chain {
			if chain[i].Number != uint64(i) {
				return fmt.Errorf("block at position %d carries number %d", i, chain[i].Number)
			}
		}
	}

	for i := 1; i < len(chain); i++ {
		if chain[i].PrevBlockHash != chain[i-1].Hash() {
			return fmt.Errorf("block %d does not link to its parent", chain[i].Number)
		}

		if !isHashSolved(difficulty, chain[i].Hash()) {
			return fmt.Errorf("block %d hash does not meet the work target", chain[i].Number)
		}
	}

	return nil
}
