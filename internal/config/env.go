package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port             string `envconfig:"PORT" default:"8080"`
	ChainsFilePath   string `envconfig:"CHAINS_FILE_PATH" default:"configs/chains.yaml"`
	AccountsFilePath string `envconfig:"ACCOUNTS_FILE_PATH" default:"accounts.json"`
	DefaultChainID   string `envconfig:"DEFAULT_CHAIN_ID" default:"namada-testnet"`
	PublicOrigin     string `envconfig:"PUBLIC_ORIGIN"` // e.g. https://wallet.example, overrides the request host
	TrustProxy       bool   `envconfig:"TRUST_PROXY_HEADERS" default:"false"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	QRSize           int    `envconfig:"QR_SIZE" default:"256"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if c.QRSize <= 0 {
		return fmt.Errorf("QR_SIZE must be positive, got %d", c.QRSize)
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetChainsFilePath returns path to the chain table
func GetChainsFilePath() string {
	return Get().ChainsFilePath
}

// GetAccountsFilePath returns path to the accounts file
func GetAccountsFilePath() string {
	return Get().AccountsFilePath
}

// GetDefaultChainID returns the chain used when a request names none
func GetDefaultChainID() string {
	return Get().DefaultChainID
}

// GetPublicOrigin returns the origin receive links are built for, "" to use the request host.
// Set it when the server is reachable from untrusted clients: otherwise links
// carry whatever Host header the client sent.
func GetPublicOrigin() string {
	return Get().PublicOrigin
}

// GetTrustProxy reports whether X-Forwarded-Proto from a reverse proxy is honoured
func GetTrustProxy() bool {
	return Get().TrustProxy
}

// GetLogLevel returns log level from configuration
func GetLogLevel() string {
	return Get().LogLevel
}

// GetQRSize returns QR code PNG size in pixels
func GetQRSize() int {
	return Get().QRSize
}
