package fundpool

import "github.com/shopspring/decimal"

// DefaultLookback is the default valuation lookback window, in calendar days.
// It tolerates a long weekend plus one holiday.
const DefaultLookback = 7

// Valuation is a resolved feed value together with the date it actually
// comes from, which may be earlier than the date asked for.
type Valuation struct {
	Effective Date
	Value     decimal.Decimal
}

// ResolveValuation resolves the valuation to use for a date.
//
// If the feed has a value for 'on' it is returned as-is. Otherwise the window
// on-1 .. on-maxLookback is scanned backwards and the first hit wins. The
// lookback is in calendar days, so weekends and short holiday clusters are
// covered. When the window is exhausted the second return is false.
//
// The resolver makes no NAV decision itself: it only supplies a valuation.
func ResolveValuation(feed ValuationFeed, on Date, maxLookback int) (Valuation, bool) {
	if maxLookback < 0 {
		maxLookback = 0
	}
	for back := 0; back <= maxLookback; back++ {
		day := on.Add(-back)
		if v, ok := feed.Value(day); ok {
			return Valuation{Effective: day, Value: v}, true
		}
	}
	return Valuation{}, false
}
