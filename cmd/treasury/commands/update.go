package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// updateCmd runs one full pipeline pass and writes the snapshot
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Run one snapshot update",
	Long: `Fetches price history for every catalog asset, computes performance
and atomically replaces the output snapshot.

A single asset's upstream failure never aborts the run; it shows up in the
snapshot as an empty series with null performance.

Example:
  go run ./cmd/treasury update`,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	p, err := buildPipeline()
	if err != nil {
		return err
	}

	report, err := p.collector.Run(context.Background())
	if err != nil {
		return fmt.Errorf("run collector: %w", err)
	}

	if err := p.store.Write(report); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	p.logger.WithFields(map[string]interface{}{
		"path":       p.store.Path(),
		"updated_at": report.UpdatedAt,
	}).Info("Snapshot update finished")

	return nil
}
