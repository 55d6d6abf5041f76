package fundpool

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// ValuationFeed supplies the fund's aggregated total value for a date.
//
// Values are non-negative, already currency-normalized and already summed
// across all holdings for that date: deduplication of raw rows is the feed
// loader's responsibility, not the engine's.
type ValuationFeed interface {
	// Value returns the fund total value on a date, and whether the feed has
	// a value for that exact date.
	Value(on Date) (decimal.Decimal, bool)
}

// ValuationPoint is one validated day of the feed.
type ValuationPoint struct {
	On    Date
	Value decimal.Decimal
}

// NewValuationPoint validates a raw (date, value) row at the boundary.
// Negative values indicate an upstream loader bug and are rejected here,
// before they can reach the engine.
func NewValuationPoint(on Date, value decimal.Decimal) (ValuationPoint, error) {
	if on.IsZero() {
		return ValuationPoint{}, fmt.Errorf("valuation point has no date")
	}
	if value.IsNegative() {
		return ValuationPoint{}, fmt.Errorf("valuation on %s is negative: %s", on, value)
	}
	return ValuationPoint{On: on, Value: value}, nil
}

// Feed stores a chronological series of fund valuations, one per date.
// It ensures that dates are unique and the series is always sorted.
type Feed struct {
	days   []Date
	values []decimal.Decimal
}

// NewFeed returns an empty feed.
func NewFeed() *Feed { return &Feed{} }

// Len returns the number of days in the feed.
func (f *Feed) Len() int { return len(f.days) }

// Add inserts a validated point into the feed. An existing value at that date
// is overwritten, giving higher priority to the last data.
func (f *Feed) Add(p ValuationPoint) {
	if i := slices.Index(f.days, p.On); i >= 0 {
		f.values[i] = p.Value
		return
	}
	f.days, f.values = append(f.days, p.On), append(f.values, p.Value)
	f.sort()
}

// chronologicalFeed is a private implementation to keep the feed sorted.
type chronologicalFeed struct{ *Feed }

func (s chronologicalFeed) Len() int           { return len(s.days) }
func (s chronologicalFeed) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }
func (s chronologicalFeed) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func (f *Feed) sort() { sort.Sort(chronologicalFeed{f}) }

// Value returns the fund total value on 'on' and true, or zero and false.
func (f *Feed) Value(on Date) (decimal.Decimal, bool) {
	if i := slices.Index(f.days, on); i >= 0 {
		return f.values[i], true
	}
	return decimal.Decimal{}, false
}

// Latest returns the latest date and value in the feed.
// If the feed is empty, it returns zero values and false.
func (f *Feed) Latest() (Date, decimal.Decimal, bool) {
	last := len(f.days) - 1
	if last < 0 {
		return Date{}, decimal.Decimal{}, false
	}
	return f.days[last], f.values[last], true
}

// Points returns an iterator over all points in the feed, in chronological order.
func (f *Feed) Points() iter.Seq[ValuationPoint] {
	return func(yield func(ValuationPoint) bool) {
		for i, on := range f.days {
			if !yield(ValuationPoint{On: on, Value: f.values[i]}) {
				return
			}
		}
	}
}

var _ ValuationFeed = (*Feed)(nil)
