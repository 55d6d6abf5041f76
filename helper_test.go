package fundpool

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// EUR is a helper for tests to create euro money from const.
func EUR(v float64) Money { return M(v, "EUR") }

// at parses an RFC3339 timestamp for tests.
func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// contribute builds a contribution event for tests.
func contribute(ts, who string, amount float64) ContributionEvent {
	return NewContribution(at(ts), who, EUR(amount))
}

// withdraw builds a withdrawal event for tests.
func withdraw(ts, who string, amount float64) ContributionEvent {
	return NewWithdrawal(at(ts), who, EUR(amount))
}

// mustLedger builds a UTC ledger from events, failing the test on invalid ones.
func mustLedger(t *testing.T, events ...ContributionEvent) *Ledger {
	t.Helper()
	l := NewLedger(time.UTC)
	if err := l.Append(events...); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	return l
}

// feedOf builds a feed from a date→value map.
func feedOf(t *testing.T, points map[string]float64) *Feed {
	t.Helper()
	f := NewFeed()
	for day, value := range points {
		p, err := NewValuationPoint(MustParseDate(day), decimal.NewFromFloat(value))
		if err != nil {
			t.Fatalf("NewValuationPoint(%s) failed: %v", day, err)
		}
		f.Add(p)
	}
	return f
}

// wantUnits asserts a unit balance within 1e-6, the engine's documented
// display tolerance for fractional units.
func wantUnits(t *testing.T, got Units, want float64) {
	t.Helper()
	diff := got.Decimal().Sub(decimal.NewFromFloat(want)).Abs()
	if diff.GreaterThan(decimal.New(1, -6)) {
		t.Errorf("units = %s, want %v", got, want)
	}
}

// wantNAV asserts the NAV of an audit sample.
func wantNAV(t *testing.T, got Money, want float64) {
	t.Helper()
	if !got.Decimal().Equal(decimal.NewFromFloat(want)) {
		t.Errorf("NAV = %s, want %v", got.Decimal(), want)
	}
}
