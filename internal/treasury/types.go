package treasury

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the day-resolution date format used in the snapshot JSON.
const DateFormat = "2006-01-02"

// UpdatedAtFormat is the timestamp format of the snapshot's updated_at field.
const UpdatedAtFormat = "2006-01-02 15:04"

// PricePoint is one daily observation: a calendar date (UTC midnight, no time
// component) and a non-negative price.
type PricePoint struct {
	Date  time.Time
	Price float64
}

type pricePointJSON struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// MarshalJSON renders the date at day resolution.
func (p PricePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(pricePointJSON{
		Date:  p.Date.Format(DateFormat),
		Price: p.Price,
	})
}

// UnmarshalJSON parses a day-resolution date string.
func (p *PricePoint) UnmarshalJSON(data []byte) error {
	var raw pricePointJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d, err := time.Parse(DateFormat, raw.Date)
	if err != nil {
		return fmt.Errorf("invalid price point date %q: %w", raw.Date, err)
	}

	p.Date = d
	p.Price = raw.Price
	return nil
}

// TimeSeries is an ordered sequence of price points, strictly ascending by
// date with no duplicates. Only Normalize produces one.
type TimeSeries []PricePoint

// Last returns the most recent point of the series.
func (s TimeSeries) Last() (PricePoint, bool) {
	if len(s) == 0 {
		return PricePoint{}, false
	}
	return s[len(s)-1], true
}

// Day truncates a timestamp to its UTC calendar date.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CompanyRecord is the per-company slice of the snapshot: identity, display
// color and the computed series + performance.
type CompanyRecord struct {
	Ticker      string      `json:"ticker"`
	Name        string      `json:"name"`
	Color       string      `json:"color"`
	Prices      TimeSeries  `json:"prices"`
	Performance Performance `json:"performance"`
}

// CategoryRecord groups one crypto asset with the companies holding it in
// treasury.
type CategoryRecord struct {
	CoinID          string          `json:"coin_id"`
	CoinSymbol      string          `json:"coin_symbol"`
	CoinColor       string          `json:"coin_color"`
	CoinPrices      TimeSeries      `json:"coin_prices"`
	CoinPerformance Performance     `json:"coin_performance"`
	Companies       []CompanyRecord `json:"companies"`
}

// Report is the aggregate output of one pipeline run. Each run produces a
// fresh, fully-replacing snapshot.
type Report struct {
	UpdatedAt  string                    `json:"updated_at"`
	Categories map[string]CategoryRecord `json:"categories"`
}

// NewReport creates an empty report stamped with the given time.
func NewReport(now time.Time) *Report {
	return &Report{
		UpdatedAt:  now.Format(UpdatedAtFormat),
		Categories: make(map[string]CategoryRecord),
	}
}
