package mempool_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luxchain/ledger/foundation/blockchain/database"
	"github.com/luxchain/ledger/foundation/blockchain/mempool"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Mempool(t *testing.T) {
	txs := []database.Tx{
		database.NewTx("kennedy", "pavel", 10),
		database.NewTx("pavel", "edward", 5),
		database.NewTx("kennedy", "edward", 3),
		database.NewTx("kennedy", "pavel", 10),
	}

	t.Log("Given the need to validate the mempool api.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen submitting a set of transactions.", testID)
		{
			mp := mempool.New()

			for i, tx := range txs {
				if count := mp.Submit(tx); count != i+1 {
					t.Fatalf("\t%s\tTest %d:\tShould report the growing pool length: got %d, exp %d.", failed, testID, count, i+1)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould report the growing pool length.", success, testID)

			if mp.Count() != len(txs) {
				t.Fatalf("\t%s\tTest %d:\tShould hold every submitted transaction: got %d.", failed, testID, mp.Count())
			}
			t.Logf("\t%s\tTest %d:\tShould hold every submitted transaction, duplicates included.", success, testID)

			pool := mp.Copy()
			for i, tx := range pool {
				if tx != txs[i] {
					t.Logf("\t%s\tTest %d:\tgot: %v", failed, testID, tx)
					t.Logf("\t%s\tTest %d:\texp: %v", failed, testID, txs[i])
					t.Fatalf("\t%s\tTest %d:\tShould keep transactions in arrival order.", failed, testID)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould keep transactions in arrival order.", success, testID)

			pool[0] = database.NewTx("intruder", "intruder", 1)
			if mp.Copy()[0] != txs[0] {
				t.Fatalf("\t%s\tTest %d:\tShould hand out copies, not the live pool.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould hand out copies, not the live pool.", success, testID)

			mp.Truncate()
			if mp.Count() != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould be empty after truncate: got %d.", failed, testID, mp.Count())
			}
			t.Logf("\t%s\tTest %d:\tShould be empty after truncate.", success, testID)
		}
	}
}

func Test_Cache(t *testing.T) {
	txs := []database.Tx{
		database.NewTx("kennedy", "pavel", 10),
		database.NewTx("pavel", "edward", 5),
	}

	t.Log("Given the need to carry the mempool across a restart.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen saving and loading a cache file.", testID)
		{
			path := filepath.Join(t.TempDir(), "cache", "miner1.json")

			mp := mempool.New()
			for _, tx := range txs {
				mp.Submit(tx)
			}

			if err := mp.SaveCache(path); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to save the cache: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to save the cache.", success, testID)

			loaded, err := mempool.LoadCache(path)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to load the cache: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to load the cache.", success, testID)

			if len(loaded) != len(txs) {
				t.Fatalf("\t%s\tTest %d:\tShould load every cached transaction: got %d.", failed, testID, len(loaded))
			}
			for i, tx := range loaded {
				if tx != txs[i] {
					t.Fatalf("\t%s\tTest %d:\tShould load transactions in their saved order.", failed, testID)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould load transactions in their saved order.", success, testID)
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen no cache file exists.", testID)
		{
			loaded, err := mempool.LoadCache(filepath.Join(t.TempDir(), "missing.json"))
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould treat a missing file as an empty pool: %v", failed, testID, err)
			}
			if len(loaded) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould treat a missing file as an empty pool: got %d.", failed, testID, len(loaded))
			}
			t.Logf("\t%s\tTest %d:\tShould treat a missing file as an empty pool.", success, testID)
		}

		testID = 2
		t.Logf("\tTest %d:\tWhen the cache file is garbage.", testID)
		{
			path := filepath.Join(t.TempDir(), "broken.json")
			if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to write the file: %v", failed, testID, err)
			}

			if _, err := mempool.LoadCache(path); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould report an unreadable cache file.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould report an unreadable cache file.", success, testID)
		}
	}
}
