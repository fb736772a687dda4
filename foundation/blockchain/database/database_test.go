package database_test

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/luxchain/ledger/foundation/blockchain/database"
	"github.com/luxchain/ledger/foundation/blockchain/genesis"
	"github.com/luxchain/ledger/foundation/blockchain/storage/memory"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// noopEv swallows the events the chain code emits while under test.
func noopEv(v string, args ...any) {}

// testGenesis returns chain settings with a difficulty low enough to keep
// mining in tests instant.
func testGenesis() genesis.Genesis {
	return genesis.Genesis{
		Difficulty:      1,
		MiningReward:    50,
		CoinbaseAccount: "coinbase",
	}
}

// mineChain extends the genesis block with the specified number of blocks,
// one transaction per block.
func mineChain(blocks int) []database.Block {
	chain := []database.Block{database.GenesisBlock()}

	for i := 0; i < blocks; i++ {
		block := database.POW(database.POWArgs{
			Difficulty: testGenesis().Difficulty,
			PrevBlock:  chain[len(chain)-1],
			Trans:      []database.Tx{database.NewTx("kennedy", "pavel", int64(i+1))},
			EvHandler:  noopEv,
		})
		chain = append(chain, block)
	}

	return chain
}

// =============================================================================

func Test_BlockHash(t *testing.T) {
	t.Log("Given the need to validate the canonical block hash.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen hashing a block with known contents.", testID)
		{
			blk := database.Block{
				Number:        1,
				Trans:         []database.Tx{database.NewTx("kennedy", "pavel", 10)},
				TimeStamp:     1663503204,
				Nonce:         42,
				PrevBlockHash: database.GenesisPrevHash,
			}

			canonical := `{"number":1,"trans":[{"from":"kennedy","to":"pavel","value":10}],"timestamp":1663503204,"nonce":42,"prev_block_hash":"fiat lux"}`
			sum := sha256.Sum256([]byte(canonical))

			if got, exp := blk.Hash(), hexutil.Encode(sum[:]); got != exp {
				t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, got)
				t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, exp)
				t.Fatalf("\t%s\tTest %d:\tShould hash the canonical field order.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould hash the canonical field order.", success, testID)

			if blk.Hash() != blk.Hash() {
				t.Fatalf("\t%s\tTest %d:\tShould hash the same block to the same value.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould hash the same block to the same value.", success, testID)

			blk.Nonce++
			if blk.Hash() == hexutil.Encode(sum[:]) {
				t.Fatalf("\t%s\tTest %d:\tShould hash a changed block to a different value.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould hash a changed block to a different value.", success, testID)
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen hashing the genesis block.", testID)
		{
			canonical := `{"number":0,"trans":[],"timestamp":0,"nonce":0,"prev_block_hash":"fiat lux"}`
			sum := sha256.Sum256([]byte(canonical))

			if got, exp := database.GenesisBlock().Hash(), hexutil.Encode(sum[:]); got != exp {
				t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, got)
				t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, exp)
				t.Fatalf("\t%s\tTest %d:\tShould hash the genesis block to its fixed value.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould hash the genesis block to its fixed value.", success, testID)

			if database.GenesisBlock().PrevBlockHash != database.GenesisPrevHash {
				t.Fatalf("\t%s\tTest %d:\tShould carry the genesis parent marker.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould carry the genesis parent marker.", success, testID)
		}
	}
}

func Test_POW(t *testing.T) {
	t.Log("Given the need to validate the proof of work.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen mining a block on top of the genesis block.", testID)
		{
			gen := database.GenesisBlock()
			trans := []database.Tx{database.NewTx("kennedy", "pavel", 10)}

			blk := database.POW(database.POWArgs{
				Difficulty: 1,
				PrevBlock:  gen,
				Trans:      trans,
				EvHandler:  noopEv,
			})

			if blk.Number != gen.Number+1 {
				t.Fatalf("\t%s\tTest %d:\tShould number the block one past its parent: got %d.", failed, testID, blk.Number)
			}
			t.Logf("\t%s\tTest %d:\tShould number the block one past its parent.", success, testID)

			if blk.PrevBlockHash != gen.Hash() {
				t.Fatalf("\t%s\tTest %d:\tShould link the block to its parent hash.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould link the block to its parent hash.", success, testID)

			value := new(big.Int).SetBytes(hexutil.MustDecode(blk.Hash()))
			if value.Cmp(database.PowTarget(1)) > 0 {
				t.Fatalf("\t%s\tTest %d:\tShould produce a hash at or under the target.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould produce a hash at or under the target.", success, testID)

			// Every nonce below the one found must fail the target, the
			// search starts at zero and moves up.
			for nonce := uint64(0); nonce < blk.Nonce; nonce++ {
				lower := blk
				lower.Nonce = nonce

				value := new(big.Int).SetBytes(hexutil.MustDecode(lower.Hash()))
				if value.Cmp(database.PowTarget(1)) <= 0 {
					t.Fatalf("\t%s\tTest %d:\tShould find the smallest solving nonce: nonce %d also solves.", failed, testID, nonce)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould find the smallest solving nonce.", success, testID)
		}
	}
}

func Test_PowTarget(t *testing.T) {
	t.Log("Given the need to validate the work target math.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen computing targets for a range of difficulties.", testID)
		{
			two256 := new(big.Int).Lsh(big.NewInt(1), 256)
			if database.PowTarget(0).Cmp(two256) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould compute 2^256 for difficulty 0.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould compute 2^256 for difficulty 0.", success, testID)

			scaled := new(big.Int).Lsh(database.PowTarget(4), 4)
			if scaled.Cmp(two256) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould halve the target with each difficulty step.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould halve the target with each difficulty step.", success, testID)

			if database.PowTarget(256).Cmp(big.NewInt(1)) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould compute 1 for difficulty 256.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould compute 1 for difficulty 256.", success, testID)

			if database.PowTarget(300).Cmp(database.PowTarget(256)) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould clamp difficulties past 256.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould clamp difficulties past 256.", success, testID)
		}
	}
}

// =============================================================================

func Test_Database(t *testing.T) {
	t.Log("Given the need to validate the chain database.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen opening a database over an empty store.", testID)
		{
			strg := memory.New()

			db, err := database.New(testGenesis(), strg, 3, false, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to open the database: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to open the database.", success, testID)

			if db.LatestBlock().Hash() != database.GenesisBlock().Hash() {
				t.Fatalf("\t%s\tTest %d:\tShould start the chain at the genesis block.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould start the chain at the genesis block.", success, testID)

			if db.BlockCount() != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould report block count 0: got %d.", failed, testID, db.BlockCount())
			}
			t.Logf("\t%s\tTest %d:\tShould report block count 0.", success, testID)

			blk, err := db.GetBlock(0)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould persist the genesis block on first open: %v", failed, testID, err)
			}
			if blk.Hash() != database.GenesisBlock().Hash() {
				t.Fatalf("\t%s\tTest %d:\tShould persist the genesis block on first open.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould persist the genesis block on first open.", success, testID)
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen appending more blocks than the window holds.", testID)
		{
			strg := memory.New()
			chain := mineChain(5)

			db, err := database.New(testGenesis(), strg, 3, false, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to open the database: %v", failed, testID, err)
			}

			for _, block := range chain[1:] {
				if err := db.Append(block); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to append block %d: %v", failed, testID, block.Number, err)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould be able to append 5 blocks.", success, testID)

			window := db.CopyWindow()
			if len(window) != 3 {
				t.Fatalf("\t%s\tTest %d:\tShould keep 3 blocks in memory: got %d.", failed, testID, len(window))
			}
			t.Logf("\t%s\tTest %d:\tShould keep 3 blocks in memory.", success, testID)

			if window[0].Number != 3 || window[2].Number != 5 {
				t.Fatalf("\t%s\tTest %d:\tShould keep the most recent blocks: got %d..%d.", failed, testID, window[0].Number, window[2].Number)
			}
			t.Logf("\t%s\tTest %d:\tShould keep the most recent blocks.", success, testID)

			if db.BlockCount() != 5 {
				t.Fatalf("\t%s\tTest %d:\tShould report block count 5: got %d.", failed, testID, db.BlockCount())
			}
			t.Logf("\t%s\tTest %d:\tShould report block count 5.", success, testID)

			if err := db.Persist(); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to persist the chain: %v", failed, testID, err)
			}

			for num := uint64(0); num <= 5; num++ {
				blk, err := db.GetBlock(num)
				if err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould read evicted block %d from storage: %v", failed, testID, num, err)
				}
				if blk.Hash() != chain[num].Hash() {
					t.Fatalf("\t%s\tTest %d:\tShould read back block %d unchanged.", failed, testID, num)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould read every block back from storage.", success, testID)
		}

		testID = 2
		t.Logf("\tTest %d:\tWhen reopening the database over the same store.", testID)
		{
			strg := memory.New()
			chain := mineChain(5)

			db, err := database.New(testGenesis(), strg, 3, false, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to open the database: %v", failed, testID, err)
			}
			for _, block := range chain[1:] {
				if err := db.Append(block); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to append block %d: %v", failed, testID, block.Number, err)
				}
			}
			if err := db.Persist(); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to persist the chain: %v", failed, testID, err)
			}

			db2, err := database.New(testGenesis(), strg, 3, false, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to reopen the database: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to reopen the database.", success, testID)

			if db2.BlockCount() != 5 {
				t.Fatalf("\t%s\tTest %d:\tShould recover block count 5: got %d.", failed, testID, db2.BlockCount())
			}
			t.Logf("\t%s\tTest %d:\tShould recover block count 5.", success, testID)

			if db2.LatestBlock().Hash() != chain[5].Hash() {
				t.Fatalf("\t%s\tTest %d:\tShould recover the latest block.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould recover the latest block.", success, testID)

			if len(db2.CopyWindow()) != 3 {
				t.Fatalf("\t%s\tTest %d:\tShould rebuild only the window in memory: got %d.", failed, testID, len(db2.CopyWindow()))
			}
			t.Logf("\t%s\tTest %d:\tShould rebuild only the window in memory.", success, testID)

			db3, err := database.New(testGenesis(), strg, 3, true, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to reopen the database loading all blocks: %v", failed, testID, err)
			}
			if len(db3.CopyWindow()) != 6 {
				t.Fatalf("\t%s\tTest %d:\tShould load the full chain on request: got %d.", failed, testID, len(db3.CopyWindow()))
			}
			t.Logf("\t%s\tTest %d:\tShould load the full chain on request.", success, testID)
		}
	}
}

func Test_DatabaseRecovery(t *testing.T) {
	t.Log("Given the need to recover from unreadable chain records.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen the block count record is garbage.", testID)
		{
			strg := memory.New()
			if err := strg.Put("blockCount", []byte("not a number")); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to seed the store: %v", failed, testID, err)
			}

			db, err := database.New(testGenesis(), strg, 3, false, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould open the database anyway: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould open the database anyway.", success, testID)

			if db.BlockCount() != 0 || db.LatestBlock().Hash() != database.GenesisBlock().Hash() {
				t.Fatalf("\t%s\tTest %d:\tShould fall back to a genesis only chain.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould fall back to a genesis only chain.", success, testID)

			if _, err := db.GetBlock(0); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould persist the fallback genesis block: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould persist the fallback genesis block.", success, testID)
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen a block record is garbage.", testID)
		{
			strg := memory.New()
			chain := mineChain(2)

			db, err := database.New(testGenesis(), strg, 10, false, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to open the database: %v", failed, testID, err)
			}
			for _, block := range chain[1:] {
				if err := db.Append(block); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to append block %d: %v", failed, testID, block.Number, err)
				}
			}
			if err := db.Persist(); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to persist the chain: %v", failed, testID, err)
			}

			if err := strg.Put("block2", []byte("{broken")); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to damage the record: %v", failed, testID, err)
			}

			db2, err := database.New(testGenesis(), strg, 10, false, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould open the database anyway: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould open the database anyway.", success, testID)

			if db2.BlockCount() != 0 || db2.LatestBlock().Hash() != database.GenesisBlock().Hash() {
				t.Fatalf("\t%s\tTest %d:\tShould fall back to a genesis only chain.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould fall back to a genesis only chain.", success, testID)
		}

		testID = 2
		t.Logf("\tTest %d:\tWhen a block record is missing.", testID)
		{
			chain := mineChain(2)

			strg := memory.New()
			count, _ := json.Marshal(uint64(2))
			if err := strg.Put("blockCount", count); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to seed the store: %v", failed, testID, err)
			}
			for _, num := range []uint64{0, 2} {
				data, _ := json.Marshal(chain[num])
				if err := strg.Put(fmt.Sprintf("block%d", num), data); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to seed the store: %v", failed, testID, err)
				}
			}

			db, err := database.New(testGenesis(), strg, 10, false, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould open the database anyway: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould open the database anyway.", success, testID)

			if db.BlockCount() != 2 {
				t.Fatalf("\t%s\tTest %d:\tShould keep the stored block count: got %d.", failed, testID, db.BlockCount())
			}
			t.Logf("\t%s\tTest %d:\tShould keep the stored block count.", success, testID)

			if len(db.CopyWindow()) != 2 {
				t.Fatalf("\t%s\tTest %d:\tShould skip the missing block: got %d in window.", failed, testID, len(db.CopyWindow()))
			}
			t.Logf("\t%s\tTest %d:\tShould skip the missing block.", success, testID)
		}
	}
}

// =============================================================================

func Test_Iterator(t *testing.T) {
	t.Log("Given the need to walk the persisted chain with a cursor.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen walking a chain of 4 blocks.", testID)
		{
			strg := memory.New()
			chain := mineChain(3)

			db, err := database.New(testGenesis(), strg, 10, false, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to open the database: %v", failed, testID, err)
			}
			for _, block := range chain[1:] {
				if err := db.Append(block); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to append block %d: %v", failed, testID, block.Number, err)
				}
			}
			if err := db.Persist(); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to persist the chain: %v", failed, testID, err)
			}

			var numbers []uint64
			iter := db.ForEach()
			for block, err := iter.Next(); !iter.Done(); block, err = iter.Next() {
				if err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould read every block without error: %v", failed, testID, err)
				}
				numbers = append(numbers, block.Number)
			}

			if len(numbers) != 4 {
				t.Fatalf("\t%s\tTest %d:\tShould visit 4 blocks: got %d.", failed, testID, len(numbers))
			}
			t.Logf("\t%s\tTest %d:\tShould visit 4 blocks.", success, testID)

			for i, num := range numbers {
				if num != uint64(i) {
					t.Fatalf("\t%s\tTest %d:\tShould visit blocks in order: got %d at %d.", failed, testID, num, i)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould visit blocks in order.", success, testID)
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen the chain grows while a cursor is open.", testID)
		{
			strg := memory.New()
			chain := mineChain(4)

			db, err := database.New(testGenesis(), strg, 10, false, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to open the database: %v", failed, testID, err)
			}
			for _, block := range chain[1:3] {
				if err := db.Append(block); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to append block %d: %v", failed, testID, block.Number, err)
				}
			}
			if err := db.Persist(); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to persist the chain: %v", failed, testID, err)
			}

			iter := db.ForEach()
			if _, err := iter.Next(); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould read the first block: %v", failed, testID, err)
			}

			// Another block lands after the cursor was created.
			if err := db.Append(chain[3]); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to append block 3: %v", failed, testID, err)
			}
			if err := db.Persist(); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to persist the chain: %v", failed, testID, err)
			}

			count := 1
			for _, err := iter.Next(); !iter.Done(); _, err = iter.Next() {
				if err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould read every block without error: %v", failed, testID, err)
				}
				count++
			}

			if count != 3 {
				t.Fatalf("\t%s\tTest %d:\tShould stop at the chain end captured at creation: got %d.", failed, testID, count)
			}
			t.Logf("\t%s\tTest %d:\tShould stop at the chain end captured at creation.", success, testID)

			count = 0
			iter2 := db.ForEach()
			for _, err := iter2.Next(); !iter2.Done(); _, err = iter2.Next() {
				if err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould read every block without error: %v", failed, testID, err)
				}
				count++
			}

			if count != 4 {
				t.Fatalf("\t%s\tTest %d:\tShould see the new block from a fresh cursor: got %d.", failed, testID, count)
			}
			t.Logf("\t%s\tTest %d:\tShould see the new block from a fresh cursor.", success, testID)
		}

		testID = 2
		t.Logf("\tTest %d:\tWhen a block the cursor needs is missing.", testID)
		{
			chain := mineChain(2)

			strg := memory.New()
			count, _ := json.Marshal(uint64(2))
			strg.Put("blockCount", count)
			data, _ := json.Marshal(chain[0])
			strg.Put("block0", data)
			data, _ = json.Marshal(chain[2])
			strg.Put("block2", data)

			db, err := database.New(testGenesis(), strg, 10, false, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to open the database: %v", failed, testID, err)
			}

			iter := db.ForEach()
			if _, err := iter.Next(); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould read the first block: %v", failed, testID, err)
			}

			if _, err := iter.Next(); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould surface the read error for the missing block.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould surface the read error for the missing block.", success, testID)

			if iter.Done() {
				t.Fatalf("\t%s\tTest %d:\tShould not report end of chain on a read error.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould not report end of chain on a read error.", success, testID)
		}
	}
}

// =============================================================================

func Test_VerifyChain(t *testing.T) {
	chain := mineChain(2)

	t.Log("Given the need to validate chains of blocks.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen checking a well formed chain.", testID)
		{
			if !database.VerifyChain(chain, 1, false, noopEv) {
				t.Fatalf("\t%s\tTest %d:\tShould accept the chain in full.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould accept the chain in full.", success, testID)

			if !database.VerifyChain(chain[1:], 1, true, noopEv) {
				t.Fatalf("\t%s\tTest %d:\tShould accept a windowed tail partially.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould accept a windowed tail partially.", success, testID)
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen checking damaged chains.", testID)
		{
			if database.VerifyChain(nil, 1, false, noopEv) {
				t.Fatalf("\t%s\tTest %d:\tShould reject an empty chain.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould reject an empty chain.", success, testID)

			wrongStart := make([]database.Block, len(chain))
			copy(wrongStart, chain)
			wrongStart[0].Nonce = 7
			if database.VerifyChain(wrongStart, 1, false, noopEv) {
				t.Fatalf("\t%s\tTest %d:\tShould reject a chain not rooted at the genesis block.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould reject a chain not rooted at the genesis block.", success, testID)

			brokenLink := make([]database.Block, len(chain))
			copy(brokenLink, chain)
			brokenLink[2].PrevBlockHash = brokenLink[0].Hash()
			if database.VerifyChain(brokenLink, 1, false, noopEv) {
				t.Fatalf("\t%s\tTest %d:\tShould reject a chain with a broken link.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould reject a chain with a broken link.", success, testID)

			badNumber := make([]database.Block, len(chain))
			copy(badNumber, chain)
			badNumber[2].Number = 5
			if database.VerifyChain(badNumber, 1, false, noopEv) {
				t.Fatalf("\t%s\tTest %d:\tShould reject a chain with an out of place block number.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould reject a chain with an out of place block number.", success, testID)

			if database.VerifyChain(chain, 32, false, noopEv) {
				t.Fatalf("\t%s\tTest %d:\tShould reject a chain mined below the difficulty.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould reject a chain mined below the difficulty.", success, testID)
		}
	}
}
