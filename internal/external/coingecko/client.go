package coingecko

import (
	"github.com/kittycapital/crypto-treasury/pkg/config"
	"github.com/kittycapital/crypto-treasury/pkg/httputil"
	"github.com/kittycapital/crypto-treasury/pkg/logger"
)

// Client handles communication with the CoinGecko API
// SSOT: CoinGecko calls happen only through this client.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new CoinGecko client
func NewClient(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log.WithField("source", "coingecko"),
		baseURL:    cfg.CoinGecko.BaseURL,
	}
}
