// Package main is the entry point for the wallet receive service and CLI.
package main

import (
	"os"

	"github.com/AlexZinkM/receive-wallet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
