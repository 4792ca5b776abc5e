// Package chain holds the static per-chain configuration table.
package chain

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/receive-wallet/internal/model"

	"gopkg.in/yaml.v3"
)

// ErrUnknownChain is returned when a chain id has no configuration entry
var ErrUnknownChain = errors.New("unknown chain")

// Store is the read-only chain configuration table.
// It is built once at startup and safe for concurrent readers.
type Store struct {
	chains map[string]model.ChainConfig
	ids    []string
}

// chainsFile represents chains.yaml structure
type chainsFile struct {
	Chains []model.ChainConfig `yaml:"chains"`
}

// NewStore builds a store from the given configurations
func NewStore(cfgs []model.ChainConfig) (*Store, error) {
	s := &Store{
		chains: make(map[string]model.ChainConfig, len(cfgs)),
		ids:    make([]string, 0, len(cfgs)),
	}

	for i, cfg := range cfgs {
		if cfg.ChainID == "" {
			return nil, fmt.Errorf("chain #%d: chainId is empty", i)
		}
		if cfg.AccountIndex == "" {
			return nil, fmt.Errorf("chain %q: accountIndex is empty", cfg.ChainID)
		}
		if _, ok := s.chains[cfg.ChainID]; ok {
			return nil, fmt.Errorf("chain %q: duplicate entry", cfg.ChainID)
		}
		switch cfg.AddressFormat {
		case model.AddressFormatNone, model.AddressFormatBech32m, model.AddressFormatBase58:
		default:
			return nil, fmt.Errorf("chain %q: unsupported address format %q", cfg.ChainID, cfg.AddressFormat)
		}

		s.chains[cfg.ChainID] = cfg
		s.ids = append(s.ids, cfg.ChainID)
	}

	return s, nil
}

// Load reads the chain table from a YAML file
func Load(filePath string) (*Store, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("chains file %s does not exist", filePath)
		}
		return nil, fmt.Errorf("failed to read chains file: %w", err)
	}

	var f chainsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chains file: %w", err)
	}

	return NewStore(f.Chains)
}

// Get returns the configuration of chainID
func (s *Store) Get(chainID string) (model.ChainConfig, error) {
	cfg, ok := s.chains[chainID]
	if !ok {
		return model.ChainConfig{}, fmt.Errorf("%w: %q", ErrUnknownChain, chainID)
	}
	return cfg, nil
}

// IDs returns the configured chain ids in file order
func (s *Store) IDs() []string {
	return append([]string(nil), s.ids...)
}

// All returns every chain configuration in file order
func (s *Store) All() []model.ChainConfig {
	out := make([]model.ChainConfig, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.chains[id])
	}
	return out
}
