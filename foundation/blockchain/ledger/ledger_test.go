package ledger_test

import (
	"testing"

	"github.com/luxchain/ledger/foundation/blockchain/database"
	"github.com/luxchain/ledger/foundation/blockchain/ledger"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Balances(t *testing.T) {
	type table struct {
		name   string
		blocks [][]database.Tx
		final  map[database.AccountID]int64
	}

	tt := []table{
		{
			name: "reward and spend",
			blocks: [][]database.Tx{
				{
					database.NewTx("coinbase", "miner1", 50),
					database.NewTx("kennedy", "pavel", 10),
				},
				{
					database.NewTx("coinbase", "miner1", 50),
					database.NewTx("pavel", "kennedy", 4),
				},
			},
			final: map[database.AccountID]int64{
				"coinbase": -100,
				"miner1":   100,
				"kennedy":  -6,
				"pavel":    6,
			},
		},
		{
			name: "overdraft",
			blocks: [][]database.Tx{
				{
					database.NewTx("broke", "lucky", 1000),
				},
			},
			final: map[database.AccountID]int64{
				"broke": -1000,
				"lucky": 1000,
			},
		},
	}

	t.Log("Given the need to derive balances from mined blocks.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen applying %d blocks of transactions.", testID, len(tst.blocks))
			{
				f := func(t *testing.T) {
					ldgr := ledger.New()

					for i, trans := range tst.blocks {
						ldgr.ApplyBlock(database.Block{Number: uint64(i + 1), Trans: trans})
					}
					t.Logf("\t%s\tTest %d:\tShould be able to apply every block.", success, testID)

					for account, exp := range tst.final {
						if got := ldgr.Balance(account); got != exp {
							t.Logf("\t%s\tTest %d:\tgot: %d", failed, testID, got)
							t.Logf("\t%s\tTest %d:\texp: %d", failed, testID, exp)
							t.Fatalf("\t%s\tTest %d:\tShould have the right balance for %s.", failed, testID, account)
						}
						t.Logf("\t%s\tTest %d:\tShould have the right balance for %s.", success, testID, account)
					}

					// Transfers move value, they never create or destroy it.
					var sum int64
					for _, balance := range ldgr.Copy() {
						sum += balance
					}
					if sum != 0 {
						t.Fatalf("\t%s\tTest %d:\tShould keep the sum of all balances at zero: got %d.", failed, testID, sum)
					}
					t.Logf("\t%s\tTest %d:\tShould keep the sum of all balances at zero.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func Test_LedgerAPI(t *testing.T) {
	t.Log("Given the need to validate the ledger api.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen working with a populated ledger.", testID)
		{
			ldgr := ledger.New()
			ldgr.ApplyBlock(database.Block{Number: 1, Trans: []database.Tx{
				database.NewTx("kennedy", "pavel", 25),
			}})

			if got := ldgr.Balance("nobody"); got != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould report zero for an unknown account: got %d.", failed, testID, got)
			}
			t.Logf("\t%s\tTest %d:\tShould report zero for an unknown account.", success, testID)

			balances := ldgr.Copy()
			balances["pavel"] = 9999
			if got := ldgr.Balance("pavel"); got != 25 {
				t.Fatalf("\t%s\tTest %d:\tShould hand out copies, not the live map: got %d.", failed, testID, got)
			}
			t.Logf("\t%s\tTest %d:\tShould hand out copies, not the live map.", success, testID)

			ldgr.Reset()
			if len(ldgr.Copy()) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould drop every balance on reset.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould drop every balance on reset.", success, testID)
		}
	}
}
