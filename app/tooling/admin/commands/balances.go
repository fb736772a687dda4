// Package commands implements the admin tool commands.
package commands

import (
	"fmt"
	"sort"

	"github.com/luxchain/ledger/foundation/blockchain/database"
	"github.com/luxchain/ledger/foundation/blockchain/ledger"
)

// Balances prints the balances derived from the full chain, optionally for
// just the account named on the command line.
func Balances(args []string, db *database.Database) error {
	var onlyAct database.AccountID
	if len(args) == 3 {
		onlyAct = database.AccountID(args[2])
	}

	ldgr := ledger.New()

	iter := db.ForEach()
	for block, err := iter.Next(); !iter.Done(); block, err = iter.Next() {
		if err != nil {
			return err
		}

		ldgr.ApplyBlock(block)
	}

	fmt.Printf("LatestBlockHash: %s\n\n", db.LatestBlock().Hash())

	balances := ldgr.Copy()

	accounts := make([]database.AccountID, 0, len(balances))
	for act := range balances {
		accounts = append(accounts, act)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i] < accounts[j] })

	for _, act := range accounts {
		if onlyAct != "" && act != onlyAct {
			continue
		}
		fmt.Printf("Account: %s  Balance: %d\n", act, balances[act])
	}

	return nil
}
