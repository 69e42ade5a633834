package commands

import (
	"fmt"

	"github.com/kittycapital/crypto-treasury/internal/catalog"
	"github.com/kittycapital/crypto-treasury/internal/collector"
	"github.com/kittycapital/crypto-treasury/internal/external/coincap"
	"github.com/kittycapital/crypto-treasury/internal/external/coingecko"
	"github.com/kittycapital/crypto-treasury/internal/external/yahoo"
	"github.com/kittycapital/crypto-treasury/internal/store"
	"github.com/kittycapital/crypto-treasury/pkg/config"
	"github.com/kittycapital/crypto-treasury/pkg/httputil"
	"github.com/kittycapital/crypto-treasury/pkg/logger"
)

// pipeline bundles everything a command needs to run or serve snapshots.
type pipeline struct {
	config    *config.Config
	logger    *logger.Logger
	collector *collector.Collector
	store     *store.Store
}

// buildPipeline loads config and wires the adapters, collector and store.
func buildPipeline() (*pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	// The asset source gets the retrying client; the equity source disables
	// retry in its constructor.
	var crypto collector.CryptoSource
	switch cfg.Pipeline.CryptoProvider {
	case "coingecko":
		crypto = coingecko.NewClient(cfg, httputil.New(cfg, log), log)
	default:
		crypto = coincap.NewClient(cfg, httputil.New(cfg, log), log)
	}

	equity := yahoo.NewClient(cfg, httputil.New(cfg, log), log)

	col := collector.New(cfg, catalog.Categories(), crypto, equity, log)
	st := store.New(cfg.Pipeline.OutputPath, log)

	return &pipeline{
		config:    cfg,
		logger:    log,
		collector: col,
		store:     st,
	}, nil
}
