package commands

import (
	"fmt"

	"github.com/luxchain/ledger/foundation/blockchain/database"
)

// Transactions prints every transaction in the chain, optionally only those
// involving the account named on the command line.
func Transactions(args []string, db *database.Database) error {
	var acct database.AccountID
	if len(args) == 3 {
		acct = database.AccountID(args[2])
	}

	iter := db.ForEach()
	for block, err := iter.Next(); !iter.Done(); block, err = iter.Next() {
		if err != nil {
			return err
		}

		for _, tx := range block.Trans {
			if acct != "" && tx.From != acct && tx.To != acct {
				continue
			}
			fmt.Printf("Block: %d  From: %s  To: %s  Value: %d\n", block.Number, tx.From, tx.To, tx.Value)
		}
	}

	return nil
}
