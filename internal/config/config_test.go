package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// Tests here touch the process environment and the package-level config,
// so they do not run in parallel.

var envKeys = []string{"PORT", "CHAINS_FILE_PATH", "ACCOUNTS_FILE_PATH", "DEFAULT_CHAIN_ID", "PUBLIC_ORIGIN", "TRUST_PROXY_HEADERS", "LOG_LEVEL", "QR_SIZE"}

// unsetEnv clears the config variables for the duration of the test
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestInit_Defaults(t *testing.T) {
	unsetEnv(t)

	require.NoError(t, Init())

	assert.Equal(t, "8080", GetPort())
	assert.Equal(t, "configs/chains.yaml", GetChainsFilePath())
	assert.Equal(t, "accounts.json", GetAccountsFilePath())
	assert.Equal(t, "namada-testnet", GetDefaultChainID())
	assert.Empty(t, GetPublicOrigin())
	assert.False(t, GetTrustProxy())
	assert.Equal(t, "info", GetLogLevel())
	assert.Equal(t, 256, GetQRSize())
}

func TestInit_FromEnvironment(t *testing.T) {
	unsetEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_CHAIN_ID", "solana-mainnet")
	t.Setenv("PUBLIC_ORIGIN", "https://wallet.example")
	t.Setenv("QR_SIZE", "512")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	require.NoError(t, Init())

	assert.Equal(t, "9090", GetPort())
	assert.Equal(t, "solana-mainnet", GetDefaultChainID())
	assert.Equal(t, "https://wallet.example", GetPublicOrigin())
	assert.Equal(t, 512, GetQRSize())
	assert.True(t, GetTrustProxy())
}

func TestInit_Invalid(t *testing.T) {
	unsetEnv(t)
	t.Setenv("QR_SIZE", "big")
	require.Error(t, Init())

	t.Setenv("QR_SIZE", "-1")
	require.Error(t, Init())
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = NewLogger("warn")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger("loud")
	require.Error(t, err)
}
