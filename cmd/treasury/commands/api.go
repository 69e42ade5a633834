package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kittycapital/crypto-treasury/internal/api"
	"github.com/kittycapital/crypto-treasury/internal/api/handlers"
)

// apiCmd serves the latest snapshot over HTTP
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the latest snapshot over HTTP",
	Long: `Starts a read-only HTTP server exposing the latest snapshot.

Endpoints:
  GET /healthz
  GET /api/treasury

Example:
  go run ./cmd/treasury api`,
	RunE: runAPI,
}

func init() {
	rootCmd.AddCommand(apiCmd)
}

func runAPI(cmd *cobra.Command, args []string) error {
	p, err := buildPipeline()
	if err != nil {
		return err
	}

	snapshotHandler := handlers.NewSnapshotHandler(p.store, p.logger)
	router := api.NewRouter(snapshotHandler, p.logger)
	server := api.New(p.config, p.logger, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		p.logger.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}
