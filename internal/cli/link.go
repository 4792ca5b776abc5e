package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/AlexZinkM/receive-wallet/internal/account"
	"github.com/AlexZinkM/receive-wallet/internal/model"
	"github.com/AlexZinkM/receive-wallet/receive"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

func newLinkCmd(a *app) *cobra.Command {
	var (
		chainID   string
		accountID string
		origin    string
		showQR    bool
		copyLink  bool
	)

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Show the receive address and payment link of an account",
		Long: `Show the receive address and shareable payment link of an account.

Without --account the first account of the chain is used: transparent
accounts come before shielded ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}
			o, err := originOrDefault(origin)
			if err != nil {
				return err
			}

			sel := account.NewSelector(accountID)
			resp, err := service.Receive(sel, receive.Request{ChainID: chainOrDefault(chainID), Origin: o})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if resp.Link == "" {
				fmt.Fprintf(w, "No accounts available on chain %s\n", resp.ChainID)
				return nil
			}
			if accountID != "" && accountID != resp.SelectedAccountID {
				fmt.Fprintf(cmd.ErrOrStderr(), "account %q not found on chain %s, showing %s\n", accountID, resp.ChainID, resp.SelectedAccountID)
			}

			printReceive(w, resp)

			if showQR {
				qr, err := receive.QRCodeTerminal(resp.Link)
				if err != nil {
					return err
				}
				fmt.Fprintln(w)
				fmt.Fprint(w, qr)
			}

			if copyLink {
				if err := writeClipboard(resp.Link); err != nil {
					return fmt.Errorf("failed to copy link: %w", err)
				}
				fmt.Fprintln(w, "Link copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&chainID, "chain", "c", "", "chain id (default $DEFAULT_CHAIN_ID)")
	cmd.Flags().StringVarP(&accountID, "account", "a", "", "account id (default first account)")
	cmd.Flags().StringVar(&origin, "origin", "", "origin of the link, scheme://host (default $PUBLIC_ORIGIN)")
	cmd.Flags().BoolVar(&showQR, "qr", false, "print the link as a QR code")
	cmd.Flags().BoolVar(&copyLink, "copy", false, "copy the link to the clipboard")
	return cmd
}

func printReceive(w io.Writer, resp *model.ReceiveResponse) {
	for _, opt := range resp.Accounts {
		if opt.Value == resp.SelectedAccountID {
			fmt.Fprintf(w, "Account: %s\n", opt.Label)
		}
	}
	fmt.Fprintf(w, "Address: %s\n", resp.Address)
	fmt.Fprintf(w, "Link:    %s\n", resp.Link)
}

func newLinksCmd(a *app) *cobra.Command {
	var chainID, origin string

	cmd := &cobra.Command{
		Use:   "links",
		Short: "Show the payment links of all accounts of a chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}
			o, err := originOrDefault(origin)
			if err != nil {
				return err
			}

			links, err := service.Links(context.Background(), chainOrDefault(chainID), o)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ACCOUNT\tADDRESS\tLINK")
			for _, l := range links {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", l.AccountID, l.Address, l.Link)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&chainID, "chain", "c", "", "chain id (default $DEFAULT_CHAIN_ID)")
	cmd.Flags().StringVar(&origin, "origin", "", "origin of the links, scheme://host (default $PUBLIC_ORIGIN)")
	return cmd
}

func newAccountsCmd(a *app) *cobra.Command {
	var chainID string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the accounts of a chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}

			id := chainOrDefault(chainID)
			opts, err := service.Accounts(id)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(opts) == 0 {
				fmt.Fprintf(w, "No accounts available on chain %s\n", id)
				return nil
			}
			for _, opt := range opts {
				fmt.Fprintf(w, "%s\t%s\n", opt.Value, opt.Label)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&chainID, "chain", "c", "", "chain id (default $DEFAULT_CHAIN_ID)")
	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	var chainID string

	cmd := &cobra.Command{
		Use:   "decode <link>",
		Short: "Decode a payment link the way the send flow does",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}

			target, err := service.DecodeSendTarget(chainID, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Account index: %s\n", target.Request.AccountIndex)
			fmt.Fprintf(w, "Token type:    %s\n", target.Request.TokenType)
			fmt.Fprintf(w, "Target:        %s\n", target.Request.Target)
			if !target.Valid {
				return fmt.Errorf("invalid send target: %s", target.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&chainID, "chain", "c", "", "chain id to check the link against")
	return cmd
}

func chainIDs(cfgs []model.ChainConfig) []string {
	ids := make([]string, 0, len(cfgs))
	for _, cfg := range cfgs {
		ids = append(ids, cfg.ChainID)
	}
	return ids
}
