package filter_test

import (
	"fmt"
	"testing"

	"github.com/luxchain/ledger/foundation/blockchain/filter"
)

func Test_NoFalseNegatives(t *testing.T) {
	accounts := make([]string, 50)
	for i := range accounts {
		accounts[i] = fmt.Sprintf("account%d", i)
	}

	for _, hashes := range []uint{1, 3, 5} {
		f := filter.New(accounts, hashes)

		for _, account := range accounts {
			if !f.Test(account) {
				t.Fatalf("Should report every added value with %d hash functions: missed %s.", hashes, account)
			}
		}
	}
}

func Test_ZeroHashes(t *testing.T) {
	f := filter.New([]string{"kennedy"}, 0)

	if !f.Test("kennedy") {
		t.Fatal("Should fall back to one hash function and still report added values.")
	}
}
