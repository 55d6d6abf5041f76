package fundpool

import "github.com/shopspring/decimal"

// DefaultMinRatio is the default sanity threshold: a candidate NAV below half
// of the last valid NAV is blocked.
const DefaultMinRatio = 0.5

// SanityGuard blocks implausible NAV swings caused by upstream data defects.
//
// A single-tick NAV collapse of more than the configured ratio is far more
// likely a data-ingestion defect (a day's valuation missing most positions)
// than genuine fund performance. Blocking it prevents the bad tick from being
// permanently baked into every subsequent contributor's purchase price.
//
// The threshold is configuration, not a constant: legitimate high-volatility
// funds may need a looser bound.
type SanityGuard struct {
	MinRatio decimal.Decimal
}

// NewSanityGuard creates a guard with the given minimum ratio.
// A non-positive ratio disables blocking entirely.
func NewSanityGuard(minRatio float64) SanityGuard {
	return SanityGuard{MinRatio: decimal.NewFromFloat(minRatio)}
}

// Evaluate accepts or blocks a candidate NAV against the last valid one.
// When blocked, the last valid NAV is substituted.
// The guard is pure and stateless in its two arguments.
func (g SanityGuard) Evaluate(candidate, lastValid Money) (used Money, blocked bool) {
	floor := lastValid.MulRatio(g.MinRatio)
	if candidate.LessThan(floor) {
		return lastValid, true
	}
	return candidate, false
}
