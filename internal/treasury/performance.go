package treasury

import "time"

// Period labels of a performance report, in display order.
var PeriodLabels = []string{"1W", "3M", "6M", "YTD", "1Y"}

// Performance maps a period label to a signed percentage return. A nil value
// means "insufficient data" for that period; it is rendered as JSON null.
type Performance map[string]*float64

// NewPerformance returns a report with every period present and null.
func NewPerformance() Performance {
	perf := make(Performance, len(PeriodLabels))
	for _, label := range PeriodLabels {
		perf[label] = nil
	}
	return perf
}

// Fixed lookback windows, in calendar days back from the series' last date.
var lookbackWindows = []struct {
	label string
	days  int
}{
	{"1W", 7},
	{"3M", 90},
	{"6M", 180},
	{"1Y", 365},
}

// Calculate derives a performance report from a normalized series.
//
// For each fixed window the anchor is the point on or before the last date
// whose day distance to (last date − window) is smallest; the scan uses a
// strict < comparison, so on an exact distance tie the earlier point wins.
// YTD anchors on the point nearest to but not before January 1 of the last
// date's year. A missing anchor or a non-positive anchor price yields null
// for that period, never an error.
func Calculate(series TimeSeries) Performance {
	perf := NewPerformance()
	if len(series) < 2 {
		return perf
	}

	last := series[len(series)-1]

	for _, w := range lookbackWindows {
		target := last.Date.AddDate(0, 0, -w.days)
		anchor, ok := anchorOnOrBefore(series, target, last.Date)
		perf[w.label] = changePct(last.Price, anchor, ok)
	}

	ytdStart := time.Date(last.Date.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	anchor, ok := anchorOnOrAfter(series, ytdStart)
	perf["YTD"] = changePct(last.Price, anchor, ok)

	return perf
}

// anchorOnOrBefore scans the whole series in ascending order for the point
// not after limit that minimizes the absolute day distance to target.
func anchorOnOrBefore(series TimeSeries, target, limit time.Time) (float64, bool) {
	var (
		price float64
		found bool
	)
	minDiff := -1

	for _, p := range series {
		if p.Date.After(limit) {
			continue
		}
		diff := absDays(p.Date, target)
		if minDiff < 0 || diff < minDiff {
			minDiff = diff
			price = p.Price
			found = true
		}
	}

	return price, found
}

// anchorOnOrAfter scans for the point not before target that minimizes the
// absolute day distance to it.
func anchorOnOrAfter(series TimeSeries, target time.Time) (float64, bool) {
	var (
		price float64
		found bool
	)
	minDiff := -1

	for _, p := range series {
		if p.Date.Before(target) {
			continue
		}
		diff := absDays(p.Date, target)
		if minDiff < 0 || diff < minDiff {
			minDiff = diff
			price = p.Price
			found = true
		}
	}

	return price, found
}

// changePct computes the percentage return against the anchor price, rounded
// to 2 decimal places. Nil when there is no anchor or its price is not
// strictly positive.
func changePct(lastPrice, anchorPrice float64, found bool) *float64 {
	if !found || anchorPrice <= 0 {
		return nil
	}

	v := roundTo((lastPrice-anchorPrice)/anchorPrice*100, 2)
	return &v
}

// absDays returns the absolute distance between two day-resolution dates in
// calendar days.
func absDays(a, b time.Time) int {
	d := int(a.Sub(b) / (24 * time.Hour))
	if d < 0 {
		return -d
	}
	return d
}
