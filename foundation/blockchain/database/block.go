package database

import (
	"crypto/sha256"
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// GenesisPrevHash is the parent hash marker carried by block number zero.
const GenesisPrevHash = "fiat lux"

// zeroHash is only produced if a block fails to encode, which would mean
// a corrupted process image.
const zeroHash = "0x0000000000000000000000000000000000000000000000000000000000000000"

// =============================================================================

// Block represents a group of transactions batched together. The JSON field
// order below is the canonical encoding order used for hashing, do not
// reorder these fields.
type Block struct {
	Number        uint64 `json:"number"`          // Block number in the chain.
	Trans         []Tx   `json:"trans"`           // Transactions in this block, reward first.
	TimeStamp     uint64 `json:"timestamp"`       // Time the block was mined.
	Nonce         uint64 `json:"nonce"`           // Value identified to solve the hash solution.
	PrevBlockHash string `json:"prev_block_hash"` // Hash of the previous block in the chain.
}

// GenesisBlock returns the fixed first block every chain starts from. Its
// hash is computed like any other block's, but no work is required of it.
func GenesisBlock() Block {
	return Block{
		Number:        0,
		Trans:         []Tx{},
		TimeStamp:     0,
		Nonce:         0,
		PrevBlockHash: GenesisPrevHash,
	}
}

// Hash returns the unique hash for the block, computed over the canonical
// JSON encoding of all five block fields.
func (b Block) Hash() string {
	data, err := json.Marshal(b)
	if err != nil {
		return zeroHash
	}

	hash := sha256.Sum256(data)

	return hexutil.Encode(hash[:])
}

// =============================================================================

// POWArgs represents the set of arguments required to run POW.
type POWArgs struct {
	Difficulty uint16
	PrevBlock  Block
	Trans      []Tx
	EvHandler  func(v string, args ...any)
}

// POW constructs the next block in the chain and performs the work to find
// a nonce that solves the cryptographic POW puzzle.
func POW(args POWArgs) Block {
	nb := Block{
		Number:        args.PrevBlock.Number + 1,
		Trans:         args.Trans,
		TimeStamp:     uint64(time.Now().UTC().Unix()),
		Nonce:         0, // Will be identified by the POW algorithm.
		PrevBlockHash: args.PrevBlock.Hash(),
	}

	nb.performPOW(args.Difficulty, args.EvHandler)

	return nb
}

// performPOW does the work of mining to find a valid hash for the block.
// Pointer semantics are being used since a nonce is being discovered. The
// nonce starts at zero and increments by one, so the first solution found
// is the smallest one.
func (b *Block) performPOW(difficulty uint16, ev func(v string, args ...any)) {
	ev("database: performPOW: MINING: started: blk[%d]", b.Number)
	defer ev("database: performPOW: MINING: completed: blk[%d]", b.Number)

	var attempts uint64
	for {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("database: performPOW: MINING: attempts[%d]", attempts)
		}

		hash := b.Hash()
		if !isHashSolved(difficulty, hash) {
			b.Nonce++
			continue
		}

		ev("database: performPOW: MINING: SOLVED: prevBlk[%s]: newBlk[%s]: nonce[%d]", b.PrevBlockHash, hash, b.Nonce)
		ev("database: performPOW: MINING: attempts[%d]", attempts)

		return
	}
}

// =============================================================================

// PowTarget returns the largest hash value that counts as solved for the
// specified difficulty, 2^(256-difficulty).
func PowTarget(difficulty uint16) *big.Int {
	if difficulty > 256 {
		difficulty = 256
	}

	return new(big.Int).Lsh(big.NewInt(1), uint(256-difficulty))
}

// isHashSolved checks the hash to make sure it complies with the POW rules.
// The hash interpreted as a big-endian integer must be less than or equal
// to the target, a hash exactly on the target is valid.
func isHashSolved(difficulty uint16, hash string) bool {
	data, err := hexutil.Decode(hash)
	if err != nil {
		return false
	}

	value := new(big.Int).SetBytes(data)

	return value.Cmp(PowTarget(difficulty)) <= 0
}
