package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kittycapital/crypto-treasury/internal/treasury"
)

// chartResponse is the Yahoo Finance v8 chart payload. Only daily closes are
// consumed; close slots can be null on halted days.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchDaily fetches daily closing prices for a ticker over the lookback
// window.
func (c *Client) FetchDaily(ctx context.Context, ticker string, days int) ([]treasury.PricePoint, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	fullURL := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d",
		c.baseURL, url.PathEscape(ticker), start.Unix(), end.Unix())

	resp, err := c.httpClient.Get(ctx, fullURL)
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

	points, err := parseChart(body)
	if err != nil {
		return nil, fmt.Errorf("parse response failed: %w", err)
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker": ticker,
		"count":  len(points),
	}).Debug("Fetched equity history")

	return points, nil
}

// parseChart extracts (date, close) pairs from a chart payload.
func parseChart(body []byte) ([]treasury.PricePoint, error) {
	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("upstream error %s: %s",
			chart.Chart.Error.Code, chart.Chart.Error.Description)
	}

	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart result in response")
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote series in response")
	}

	closes := result.Indicators.Quote[0].Close

	points := make([]treasury.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}

		points = append(points, treasury.PricePoint{
			Date:  treasury.Day(time.Unix(ts, 0)),
			Price: treasury.RoundEquityPrice(*closes[i]),
		})
	}

	return points, nil
}
