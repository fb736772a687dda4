// Package genesis maintains access to the chain settings.
package genesis

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// Genesis represents the fixed settings the chain runs under. Every node
// participating in consensus must share the same values.
type Genesis struct {
	Difficulty      uint16 `json:"difficulty"`       // How difficult it needs to be to solve the work problem.
	MiningReward    int64  `json:"mining_reward"`    // Reward paid to the beneficiary of a mined block.
	CoinbaseAccount string `json:"coinbase_account"` // Account the mining reward is drawn from.
}

// New returns the reference chain settings.
func New() Genesis {
	return Genesis{
		Difficulty:      4,
		MiningReward:    50,
		CoinbaseAccount: "coinbase",
	}
}

// Load opens and consumes the genesis file at the specified path. A missing
// file is not an error, the reference settings are returned in its place.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return Genesis{}, err
	}

	var genesis Genesis
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}
