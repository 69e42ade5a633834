package coincap

import (
	"github.com/kittycapital/crypto-treasury/pkg/config"
	"github.com/kittycapital/crypto-treasury/pkg/httputil"
	"github.com/kittycapital/crypto-treasury/pkg/logger"
)

// Client handles communication with the CoinCap API
// SSOT: CoinCap calls happen only through this client.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new CoinCap client
func NewClient(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log.WithField("source", "coincap"),
		baseURL:    cfg.CoinCap.BaseURL,
	}
}

// coincapIDs remaps catalog coin ids to the ids CoinCap uses for some coins.
var coincapIDs = map[string]string{
	"binancecoin":    "binance-coin",
	"story-protocol": "story",
}

// assetID resolves the CoinCap id for a catalog coin id.
func assetID(coinID string) string {
	if mapped, ok := coincapIDs[coinID]; ok {
		return mapped
	}
	return coinID
}
