package treasury

import (
	"sort"
	"time"
)

// Normalize converts a raw adapter output into a valid TimeSeries: dates are
// truncated to day resolution, duplicate dates collapse to the last pair
// encountered in input order, and the result is sorted ascending.
//
// Upstream sources may emit duplicate or overlapping entries near window
// boundaries; last-write-wins keeps the fresher value. Normalizing an
// already-normalized series yields the same series.
func Normalize(raw []PricePoint) TimeSeries {
	byDate := make(map[time.Time]PricePoint, len(raw))
	for _, p := range raw {
		p.Date = Day(p.Date)
		byDate[p.Date] = p
	}

	out := make(TimeSeries, 0, len(byDate))
	for _, p := range byDate {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out
}
