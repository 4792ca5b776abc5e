package model

// AddressFormat selects how target addresses of a chain are validated
type AddressFormat string

const (
	AddressFormatNone    AddressFormat = ""
	AddressFormatBech32m AddressFormat = "bech32m"
	AddressFormatBase58  AddressFormat = "base58"
)

// ChainConfig is the static configuration of one supported chain
type ChainConfig struct {
	ChainID           string        `json:"chainId" yaml:"chainId"`
	Alias             string        `json:"alias,omitempty" yaml:"alias"`
	AccountIndex      string        `json:"accountIndex" yaml:"accountIndex"`
	AddressFormat     AddressFormat `json:"addressFormat,omitempty" yaml:"addressFormat"`
	TransparentPrefix string        `json:"transparentPrefix,omitempty" yaml:"transparentPrefix"`
	ShieldedPrefix    string        `json:"shieldedPrefix,omitempty" yaml:"shieldedPrefix"`
}
