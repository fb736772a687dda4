package state

import (
	"github.com/luxchain/ledger/foundation/blockchain/database"
	"github.com/luxchain/ledger/foundation/blockchain/filter"
)

// QueryBalance returns the balance for the specified account. Accounts the
// chain has never seen report zero.
func (s *State) QueryBalance(accountID database.AccountID) int64 {
	return s.ledger.Balance(accountID)
}

// QueryBalances returns a copy of every known account balance.
func (s *State) QueryBalances() map[database.AccountID]int64 {
	return s.ledger.Copy()
}

// QueryMempoolLength returns the current number of transactions waiting to
// be mined.
func (s *State) QueryMempoolLength() int {
	return s.mempool.Count()
}

// BlocksMatching scans window positions [start, start+depth) and reports
// each position holding a transaction whose sender or recipient the filter
// matches. Positions index the window, oldest block first. A reported
// position may be a false positive, an unreported one is a true miss.
func (s *State) BlocksMatching(f *filter.Filter, start int, depth int) []int {
	window := s.db.CopyWindow()

	end := start + depth
	if start < 0 {
		start = 0
	}

	matches := []int{}
	for i := start; i < end && i < len(window); i++ {
		for _, tx := range window[i].Trans {
			if f.Test(string(tx.From)) || f.Test(string(tx.To)) {
				matches = append(matches, i)
				break
			}
		}
	}

	return matches
}

// ForEachBlock returns a cursor over the full persisted chain, starting at
// block zero. Every call yields a fresh cursor.
func (s *State) ForEachBlock() database.Iterator {
	return s.db.ForEach()
}
