package main

import (
	"os"

	"github.com/kittycapital/crypto-treasury/cmd/treasury/commands"
)

// main is the entry point for the treasury CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
