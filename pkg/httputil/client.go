package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kittycapital/crypto-treasury/pkg/config"
	"github.com/kittycapital/crypto-treasury/pkg/logger"
)

// ErrRateLimited is returned when the upstream kept answering 429 after the
// full attempt budget was spent.
var ErrRateLimited = errors.New("rate limited by upstream")

// Client is an HTTP client wrapper with retry logic and logging
// SSOT: every upstream request goes through this client.
type Client struct {
	httpClient  *http.Client
	logger      *logger.Logger
	retryConfig RetryConfig

	// sleep is swappable so backoff behaviour can be tested without waiting
	sleep func(time.Duration)
}

// RetryConfig holds retry configuration.
//
// Rate-limit responses (429) back off linearly: the n-th retry waits
// n × RateLimitBackoff. Transport failures wait a fixed TransportDelay.
// MaxAttempts is the total attempt budget, not a retry count.
type RetryConfig struct {
	MaxAttempts      int
	RateLimitBackoff time.Duration
	TransportDelay   time.Duration
	Enabled          bool
}

// New creates a new HTTP client from config
// SSOT: the http.Client instance is created only here.
func New(cfg *config.Config, log *logger.Logger) *Client {
	timeout := cfg.Pipeline.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
		retryConfig: RetryConfig{
			MaxAttempts:      3,
			RateLimitBackoff: 60 * time.Second,
			TransportDelay:   5 * time.Second,
			Enabled:          true,
		},
		sleep: time.Sleep,
	}
}

// WithRetry configures retry behavior
func (c *Client) WithRetry(rc RetryConfig) *Client {
	rc.Enabled = true
	c.retryConfig = rc
	return c
}

// DisableRetry disables automatic retry
func (c *Client) DisableRetry() *Client {
	c.retryConfig.Enabled = false
	return c
}

// userAgent is sent on every request; some providers reject Go's default.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Get performs a GET request
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	return c.do(req)
}

// do executes the request with retry logic and logging
func (c *Client) do(req *http.Request) (*http.Response, error) {
	startTime := time.Now()
	url := req.URL.String()

	c.logger.WithFields(map[string]interface{}{
		"method": req.Method,
		"url":    url,
	}).Debug("HTTP request started")

	var resp *http.Response
	var err error
	if c.retryConfig.Enabled {
		resp, err = c.doWithRetry(req)
	} else {
		resp, err = c.httpClient.Do(req)
	}

	duration := time.Since(startTime)

	if err != nil {
		c.logger.WithFields(map[string]interface{}{
			"method":   req.Method,
			"url":      url,
			"duration": duration,
			"error":    err.Error(),
		}).Error("HTTP request failed")
		return nil, err
	}

	c.logger.WithFields(map[string]interface{}{
		"method":      req.Method,
		"url":         url,
		"status_code": resp.StatusCode,
		"duration":    duration,
	}).Debug("HTTP request completed")

	return resp, nil
}

// doWithRetry executes the request within the attempt budget. A 429 waits
// attempt × RateLimitBackoff before the next try; a transport failure waits
// the fixed TransportDelay. Any other response is returned as-is.
func (c *Client) doWithRetry(req *http.Request) (*http.Response, error) {
	maxAttempts := c.retryConfig.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if attempt == maxAttempts {
				break
			}

			c.logger.WithFields(map[string]interface{}{
				"attempt": attempt,
				"delay":   c.retryConfig.TransportDelay,
				"url":     req.URL.String(),
				"error":   err.Error(),
			}).Warn("Transport failure, retrying HTTP request")

			c.sleep(c.retryConfig.TransportDelay)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			// Drain so the connection can be reused
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			lastErr = ErrRateLimited
			if attempt == maxAttempts {
				break
			}

			backoff := time.Duration(attempt) * c.retryConfig.RateLimitBackoff
			c.logger.WithFields(map[string]interface{}{
				"attempt": attempt,
				"delay":   backoff,
				"url":     req.URL.String(),
			}).Warn("Rate limited (429), backing off")

			c.sleep(backoff)
			continue
		}

		return resp, nil
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", maxAttempts, lastErr)
}
