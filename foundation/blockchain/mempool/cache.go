package mempool

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/luxchain/ledger/foundation/blockchain/database"
)

// SaveCache writes the full pool snapshot to the specified file, replacing
// whatever snapshot was there before. The cache is a best-effort copy of
// the pool, the pool in memory stays authoritative.
func (mp *Mempool) SaveCache(path string) error {
	txs := mp.Copy()

	data, err := json.Marshal(txs)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// LoadCache reads a previously saved pool snapshot from the specified file.
// A missing file is not an error, it yields an empty set of transactions.
func LoadCache(path string) ([]database.Tx, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var txs []database.Tx
	if err := json.Unmarshal(content, &txs); err != nil {
		return nil, err
	}

	return txs, nil
}
