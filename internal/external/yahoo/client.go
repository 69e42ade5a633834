package yahoo

import (
	"github.com/kittycapital/crypto-treasury/pkg/config"
	"github.com/kittycapital/crypto-treasury/pkg/httputil"
	"github.com/kittycapital/crypto-treasury/pkg/logger"
)

// Client handles communication with the Yahoo Finance chart API
// SSOT: equity history calls happen only through this client.
//
// The upstream is treated as best-effort: one request per ticker, no retry.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new Yahoo Finance client
func NewClient(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient.DisableRetry(),
		logger:     log.WithField("source", "yahoo"),
		baseURL:    cfg.Yahoo.BaseURL,
	}
}
