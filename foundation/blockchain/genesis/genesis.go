// Package genesis maintains access to the genesis settings of the chain.
package genesis

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
)

// Default values used when no genesis file is provided.
const (
	DefaultProof        = 100
	DefaultMiningReward = 10
)

// Genesis represents the genesis file.
type Genesis struct {
	Proof        uint64  `json:"proof"`         // Proof stored in the genesis block.
	MiningReward float64 `json:"mining_reward"` // Reward for mining a block.
}

// Default returns the genesis settings used when no file is configured.
func Default() Genesis {
	return Genesis{
		Proof:        DefaultProof,
		MiningReward: DefaultMiningReward,
	}
}

// =============================================================================

// Load opens and consumes the genesis file. Values missing from the file
// keep their defaults.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	genesis := Default()
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, fmt.Errorf("decoding genesis %s: %w", path, err)
	}

	if genesis.MiningReward < 0 {
		return Genesis{}, fmt.Errorf("mining reward can't be negative: %g", genesis.MiningReward)
	}

	return genesis, nil
}

// Block returns the first block of every chain.
func (g Genesis) Block() database.Block {
	return database.Block{
		Index:        0,
		PreviousHash: "",
		Transactions: []database.Tx{},
		Proof:        g.Proof,
		TimeStamp:    0,
	}
}
