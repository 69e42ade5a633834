package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "treasury",
	Short: "Crypto treasury companies price tracker",
	Long: `Crypto Treasury Tracker

Fetches daily price history for tracked crypto assets and the public
companies holding them in treasury, computes fixed-window performance
(1W, 3M, 6M, YTD, 1Y) and writes an aggregate JSON snapshot.

Usage:
  go run ./cmd/treasury [command]

Examples:
  go run ./cmd/treasury update
  go run ./cmd/treasury api
  go run ./cmd/treasury scheduler`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}
