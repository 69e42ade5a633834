// Package collector drives the full pipeline run: for every catalog category
// it fetches, normalizes and scores the coin series and each company's equity
// series, then assembles the aggregate snapshot. A single asset's failure
// never aborts the run; it just yields an empty series with null performance.
package collector

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"

	"github.com/kittycapital/crypto-treasury/internal/catalog"
	"github.com/kittycapital/crypto-treasury/internal/treasury"
	"github.com/kittycapital/crypto-treasury/pkg/config"
	"github.com/kittycapital/crypto-treasury/pkg/httputil"
	"github.com/kittycapital/crypto-treasury/pkg/logger"
)

// CryptoSource fetches daily coin prices over a lookback window.
type CryptoSource interface {
	FetchHistory(ctx context.Context, coinID string, days int) ([]treasury.PricePoint, error)
}

// EquitySource fetches daily closing prices for a ticker over a lookback
// window.
type EquitySource interface {
	FetchDaily(ctx context.Context, ticker string, days int) ([]treasury.PricePoint, error)
}

// Collector orchestrates one snapshot run over the catalog
// SSOT: pipeline orchestration happens only in this package.
type Collector struct {
	categories []catalog.Category
	crypto     CryptoSource
	equity     EquitySource
	logger     *logger.Logger

	lookbackDays int

	// Courtesy throttles between consecutive upstream calls, one per source
	// type. Not a correctness requirement, but keeps unstated provider rate
	// limits happy.
	cryptoPace *rate.Limiter
	equityPace *rate.Limiter
}

// New creates a Collector from config and the two source adapters.
func New(cfg *config.Config, categories []catalog.Category, crypto CryptoSource, equity EquitySource, log *logger.Logger) *Collector {
	return &Collector{
		categories:   categories,
		crypto:       crypto,
		equity:       equity,
		logger:       log.WithField("module", "collector"),
		lookbackDays: cfg.Pipeline.LookbackDays,
		cryptoPace:   pacer(cfg.Pipeline.CryptoPacing),
		equityPace:   pacer(cfg.Pipeline.EquityPacing),
	}
}

func pacer(d time.Duration) *rate.Limiter {
	if d <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(d), 1)
}

// Run executes a full catalog pass and returns the aggregate snapshot,
// stamped with the run's completion time. It fails only when the context is
// cancelled; every per-asset error is absorbed as an empty series.
func (c *Collector) Run(ctx context.Context) (*treasury.Report, error) {
	started := time.Now()
	c.logger.WithFields(map[string]interface{}{
		"categories":    len(c.categories),
		"lookback_days": c.lookbackDays,
	}).Info("Starting snapshot run")

	categories := make(map[string]treasury.CategoryRecord, len(c.categories))

	for _, cat := range c.categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		categories[cat.Key] = c.collectCategory(ctx, cat)
	}

	report := treasury.NewReport(time.Now())
	report.Categories = categories

	c.logger.WithFields(map[string]interface{}{
		"categories": len(categories),
		"duration":   time.Since(started),
	}).Info("Snapshot run completed")

	return report, nil
}

// collectCategory builds one category record: the coin series plus every
// treasury company, with display colors assigned by position.
func (c *Collector) collectCategory(ctx context.Context, cat catalog.Category) treasury.CategoryRecord {
	coinSeries := c.fetchCoin(ctx, cat.CoinID)

	record := treasury.CategoryRecord{
		CoinID:          cat.CoinID,
		CoinSymbol:      cat.CoinSymbol,
		CoinColor:       cat.Color,
		CoinPrices:      coinSeries,
		CoinPerformance: treasury.Calculate(coinSeries),
		Companies:       make([]treasury.CompanyRecord, 0, len(cat.Companies)),
	}

	for i, company := range cat.Companies {
		series := c.fetchEquity(ctx, company.Ticker)

		record.Companies = append(record.Companies, treasury.CompanyRecord{
			Ticker:      company.Ticker,
			Name:        company.Name,
			Color:       catalog.StockColor(i),
			Prices:      series,
			Performance: treasury.Calculate(series),
		})
	}

	return record
}

// fetchCoin fetches and normalizes one coin series. Any terminal adapter
// failure is logged with its cause and degrades to an empty series.
func (c *Collector) fetchCoin(ctx context.Context, coinID string) treasury.TimeSeries {
	if err := c.cryptoPace.Wait(ctx); err != nil {
		return treasury.TimeSeries{}
	}

	raw, err := c.crypto.FetchHistory(ctx, coinID, c.lookbackDays)
	if err != nil {
		c.logger.WithError(err).WithFields(map[string]interface{}{
			"coin_id": coinID,
			"reason":  failureReason(err),
		}).Error("Failed to fetch coin history, continuing with empty series")
		return treasury.TimeSeries{}
	}

	return treasury.Normalize(raw)
}

// fetchEquity fetches and normalizes one equity series, degrading to an empty
// series on failure.
func (c *Collector) fetchEquity(ctx context.Context, ticker string) treasury.TimeSeries {
	if err := c.equityPace.Wait(ctx); err != nil {
		return treasury.TimeSeries{}
	}

	raw, err := c.equity.FetchDaily(ctx, ticker, c.lookbackDays)
	if err != nil {
		c.logger.WithError(err).WithFields(map[string]interface{}{
			"ticker": ticker,
			"reason": failureReason(err),
		}).Error("Failed to fetch equity history, continuing with empty series")
		return treasury.TimeSeries{}
	}

	return treasury.Normalize(raw)
}

// failureReason classifies an adapter error for structured logging.
func failureReason(err error) string {
	switch {
	case errors.Is(err, httputil.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "upstream_error"
	}
}
