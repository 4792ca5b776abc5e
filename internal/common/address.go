package common

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/AlexZinkM/receive-wallet/internal/model"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/gagliardetto/solana-go"
)

var (
	ErrEmptyAddress   = errors.New("address is empty")
	ErrInvalidAddress = errors.New("invalid address")
)

// ValidateAddress checks that address is well-formed for the chain described by cfg.
// Chains without an address format accept any non-empty address.
func ValidateAddress(cfg model.ChainConfig, address string) error {
	if address == "" {
		return ErrEmptyAddress
	}

	switch cfg.AddressFormat {
	case model.AddressFormatBase58:
		if !isValidSolanaAddress(address) {
			return fmt.Errorf("%w: not a base58 public key", ErrInvalidAddress)
		}
	case model.AddressFormatBech32m:
		return validateBech32m(address, prefixes(cfg))
	}
	return nil
}

// isValidSolanaAddress validates a Solana address
func isValidSolanaAddress(address string) bool {
	_, err := solana.PublicKeyFromBase58(address)
	return err == nil
}

func prefixes(cfg model.ChainConfig) []string {
	var out []string
	for _, p := range []string{cfg.TransparentPrefix, cfg.ShieldedPrefix} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateBech32m decodes a bech32m string, verifying its checksum, and checks
// the human readable part against hrps
func validateBech32m(address string, hrps []string) error {
	if address != strings.ToLower(address) {
		return fmt.Errorf("%w: must be lower case", ErrInvalidAddress)
	}

	hrp, _, version, err := bech32.DecodeGeneric(address)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if version != bech32.VersionM {
		return fmt.Errorf("%w: not a bech32m checksum", ErrInvalidAddress)
	}

	if len(hrps) > 0 && !slices.Contains(hrps, hrp) {
		return fmt.Errorf("%w: unexpected prefix %q", ErrInvalidAddress, hrp)
	}
	return nil
}
