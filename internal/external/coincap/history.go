package coincap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/kittycapital/crypto-treasury/internal/treasury"
)

// historyResponse is the CoinCap asset history payload.
type historyResponse struct {
	Data []struct {
		PriceUsd string `json:"priceUsd"`
		Date     string `json:"date"`
	} `json:"data"`
}

// FetchHistory fetches daily settlement prices for a coin over the lookback
// window. Rate limiting and retry are handled by the underlying HTTP client;
// a terminal failure surfaces as an error and is never fatal to the caller.
func (c *Client) FetchHistory(ctx context.Context, coinID string, days int) ([]treasury.PricePoint, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	url := fmt.Sprintf("%s/assets/%s/history?interval=d1&start=%d&end=%d",
		c.baseURL, assetID(coinID), start.UnixMilli(), end.UnixMilli())

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

	var history historyResponse
	if err := json.Unmarshal(body, &history); err != nil {
		return nil, fmt.Errorf("decode response failed: %w", err)
	}

	points := make([]treasury.PricePoint, 0, len(history.Data))
	for _, item := range history.Data {
		price, err := strconv.ParseFloat(item.PriceUsd, 64)
		if err != nil {
			continue
		}

		date, err := time.Parse(time.RFC3339, item.Date)
		if err != nil {
			continue
		}

		points = append(points, treasury.PricePoint{
			Date:  treasury.Day(date),
			Price: treasury.RoundCryptoPrice(price),
		})
	}

	c.logger.WithFields(map[string]interface{}{
		"coin_id": coinID,
		"count":   len(points),
	}).Debug("Fetched coin history")

	return points, nil
}
