package main

import (
	"fmt"
	"os"

	"github.com/console-banking-ledger/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// the logger may not exist yet, so we use fmt
		fmt.Fprintf(os.Stderr, "bank: %v\n", err)
		os.Exit(1)
	}
}
