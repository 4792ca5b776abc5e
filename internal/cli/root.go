// Package cli implements the wallet command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/receive-wallet/internal/account"
	"github.com/AlexZinkM/receive-wallet/internal/chain"
	"github.com/AlexZinkM/receive-wallet/internal/config"
	"github.com/AlexZinkM/receive-wallet/internal/model"
	"github.com/AlexZinkM/receive-wallet/receive"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by the commands of one invocation
type app struct {
	chainsPath   string
	accountsPath string
	log          *zap.Logger
}

// NewRootCmd builds the wallet command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wallet",
		Short: "Receive addresses and payment links for wallet accounts",
		Long: `wallet resolves the receive address of transparent and shielded accounts
and builds the shareable payment link the send flow opens.

Example:
  wallet link --chain namada-testnet --origin https://wallet.example --qr
  wallet decode https://wallet.example/token/send/0/NAM/tnam1q... --chain namada-testnet
  wallet serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.cleanup()
		},
	}

	root.PersistentFlags().StringVar(&a.chainsPath, "chains", "", "chain table file (default $CHAINS_FILE_PATH)")
	root.PersistentFlags().StringVar(&a.accountsPath, "accounts", "", "accounts file (default $ACCOUNTS_FILE_PATH)")

	root.AddCommand(
		newServeCmd(a),
		newLinkCmd(a),
		newLinksCmd(a),
		newAccountsCmd(a),
		newDecodeCmd(a),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// setup loads configuration and the logger, flags take precedence over the environment
func (a *app) setup() error {
	if err := config.Init(); err != nil {
		return err
	}
	if a.chainsPath == "" {
		a.chainsPath = config.GetChainsFilePath()
	}
	if a.accountsPath == "" {
		a.accountsPath = config.GetAccountsFilePath()
	}

	log, err := config.NewLogger(config.GetLogLevel())
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

func (a *app) cleanup() {
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// service loads the chain table and the accounts file
func (a *app) service() (*receive.Service, error) {
	store, err := chain.Load(a.chainsPath)
	if err != nil {
		return nil, err
	}
	book, err := account.LoadBook(a.accountsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	return receive.NewService(store, book, a.log), nil
}

// chainOrDefault returns chainID, or the configured default chain when empty
func chainOrDefault(chainID string) string {
	if chainID != "" {
		return chainID
	}
	return config.GetDefaultChainID()
}

// originOrDefault parses origin, falling back to PUBLIC_ORIGIN.
// No origin at all yields bare routes.
func originOrDefault(origin string) (model.Origin, error) {
	if origin == "" {
		origin = config.GetPublicOrigin()
	}
	if origin == "" {
		return model.Origin{}, nil
	}
	return model.ParseOrigin(origin)
}
