package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kittycapital/crypto-treasury/internal/treasury"
)

// marketChartResponse is the CoinGecko market_chart/range payload; prices come
// as [timestamp_ms, price] pairs.
type marketChartResponse struct {
	Prices [][2]float64 `json:"prices"`
}

// FetchHistory fetches daily prices for a coin over the lookback window.
// Sub-day timestamps are truncated to their date; the normalizer collapses the
// resulting duplicates.
func (c *Client) FetchHistory(ctx context.Context, coinID string, days int) ([]treasury.PricePoint, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	url := fmt.Sprintf("%s/coins/%s/market_chart/range?vs_currency=usd&from=%d&to=%d",
		c.baseURL, coinID, start.Unix(), end.Unix())

	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body failed: %w", err)
	}

	var chart marketChartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("decode response failed: %w", err)
	}

	points := make([]treasury.PricePoint, 0, len(chart.Prices))
	for _, pair := range chart.Prices {
		ts := time.UnixMilli(int64(pair[0]))
		points = append(points, treasury.PricePoint{
			Date:  treasury.Day(ts),
			Price: treasury.RoundCryptoPrice(pair[1]),
		})
	}

	c.logger.WithFields(map[string]interface{}{
		"coin_id": coinID,
		"count":   len(points),
	}).Debug("Fetched coin history")

	return points, nil
}
