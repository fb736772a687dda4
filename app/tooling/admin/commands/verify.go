package commands

import (
	"errors"
	"fmt"

	"github.com/luxchain/ledger/foundation/blockchain/database"
)

// Verify materializes the full chain from storage and checks every link
// and work proof. The rejection reason is reported through the database
// event handler.
func Verify(db *database.Database, difficulty uint16) error {
	var chain []database.Block

	iter := db.ForEach()
	for block, err := iter.Next(); !iter.Done(); block, err = iter.Next() {
		if err != nil {
			return err
		}

		chain = append(chain, block)
	}

	ev := func(v string, args ...any) {
		fmt.Printf(v+"\n", args...)
	}

	if !database.VerifyChain(chain, difficulty, false, ev) {
		return errors.New("chain failed verification")
	}

	fmt.Printf("chain verified: blocks[%d]\n", len(chain))

	return nil
}
