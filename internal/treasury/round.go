package treasury

import "github.com/shopspring/decimal"

// RoundCryptoPrice applies the tiered precision policy for crypto prices:
// micro-valued assets keep 8 decimal places, sub-dollar prices 6, everything
// else 2. Prevents catastrophic rounding loss on assets priced far below a
// cent while keeping larger values display-friendly.
func RoundCryptoPrice(v float64) float64 {
	switch {
	case v < 0.01:
		return roundTo(v, 8)
	case v < 1:
		return roundTo(v, 6)
	default:
		return roundTo(v, 2)
	}
}

// RoundEquityPrice rounds equity prices to 2 decimal places.
func RoundEquityPrice(v float64) float64 {
	return roundTo(v, 2)
}

func roundTo(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
