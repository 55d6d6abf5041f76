package fundpool

import (
	"errors"
	"fmt"
	"time"
)

// ErrInsufficientUnits reports a withdrawal exceeding the contributor's unit
// balance, in strict mode only. The default mode clamps and flags the audit
// entry instead.
var ErrInsufficientUnits = errors.New("insufficient units")

// TagKind classifies how the NAV of an audit sample was obtained.
type TagKind int

const (
	// TagFirst marks the inception price of an empty fund.
	TagFirst TagKind = iota
	// TagHistorical marks a NAV computed from the feed value of the exact date.
	TagHistorical
	// TagFallback marks a NAV computed from an earlier feed date, or carried
	// over from the last valid NAV when the lookback window is exhausted.
	TagFallback
	// TagBlocked marks a candidate NAV rejected by the sanity guard.
	TagBlocked
)

func (k TagKind) String() string {
	switch k {
	case TagFirst:
		return "first"
	case TagHistorical:
		return "historical"
	case TagFallback:
		return "fallback"
	case TagBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// NAVTag annotates an audit sample with the provenance of its NAV.
// For fallback tags, Effective is the earlier feed date actually used; a zero
// Effective means no feed value was found within the lookback window.
type NAVTag struct {
	Kind      TagKind
	Effective Date
}

func (t NAVTag) String() string {
	if t.Kind != TagFallback {
		return t.Kind.String()
	}
	if t.Effective.IsZero() {
		return "fallback(none)"
	}
	return fmt.Sprintf("fallback(%s)", t.Effective)
}

// NAVSample is one entry of the audit trail: the NAV used to price one event.
type NAVSample struct {
	On      Date
	UsedNAV Money
	Tag     NAVTag
	Clamped bool // a withdrawal exceeded the balance and was clamped to it
}

// EngineState is the outcome of a full ledger replay.
//
// Invariants: the per-contributor balances always sum to TotalUnits, and no
// balance is ever negative. The audit trail holds exactly one sample per
// ledger event, in event order.
type EngineState struct {
	TotalUnits     Units
	PerContributor map[string]Units
	AuditTrail     []NAVSample
}

// Units returns the outstanding units of a contributor.
func (s *EngineState) Units(contributor string) Units {
	return s.PerContributor[contributor]
}

// NAVEngine prices ledger events against a valuation feed.
//
// The engine is stateless between calls: Replay produces a fresh EngineState
// from a full pass over the ledger every time, so re-running it on identical
// inputs yields identical output.
type NAVEngine struct {
	Lookback int         // valuation lookback window in calendar days
	Guard    SanityGuard // blocks implausible NAV swings
	Strict   bool        // fail on over-withdrawals instead of clamping
}

// NewNAVEngine creates an engine with the default lookback and guard.
func NewNAVEngine() *NAVEngine {
	return &NAVEngine{
		Lookback: DefaultLookback,
		Guard:    NewSanityGuard(DefaultMinRatio),
	}
}

// Replay processes the whole ledger in chronological order and returns the
// resulting unit balances and NAV audit trail.
//
// Pricing follows the same-day rule: every event on one calendar date is
// priced off the unit count that existed at the start of that date, so a
// second same-day contributor is never diluted or favored by a first same-day
// contributor's purchase. Withdrawals redeem with the same start-of-day
// divisor, keeping the NAV identical across all events of a date.
//
// Missing or implausible valuations never abort the replay: they are absorbed
// by the fallback and blocked paths and recorded in the audit trail.
// Structurally invalid events abort with ErrInvalidEvent.
func (e *NAVEngine) Replay(ledger *Ledger, feed ValuationFeed) (*EngineState, error) {
	state := &EngineState{
		PerContributor: make(map[string]Units),
		AuditTrail:     make([]NAVSample, 0, ledger.Len()),
	}
	loc := ledger.Location()

	// 1.0 is the inception price per unit.
	lastValid := M(1, "")

	var lastTime time.Time
	var lastDate Date
	var unitsAtStartOfDay Units

	for i, ev := range ledger.Events() {
		if err := ev.Validate(); err != nil {
			return nil, err
		}
		if i > 0 && ev.Time.Before(lastTime) {
			return nil, fmt.Errorf("%w: events out of chronological order at %s", ErrInvalidEvent, ev.Time)
		}
		lastTime = ev.Time

		on := ev.On(loc)
		if on != lastDate {
			// Day boundary: snapshot the divisor before any event of this date.
			unitsAtStartOfDay = state.TotalUnits
			lastDate = on
		}

		sample := NAVSample{On: on}
		var used Money
		var blocked bool

		if state.TotalUnits.IsZero() {
			// No units outstanding: at true inception the candidate 1.0
			// passes the guard trivially, but after the fund was emptied the
			// reference NAV may have advanced and a 1.0 restart would be the
			// very collapse the guard exists for.
			candidate := M(1, ev.Amount.Currency())
			sample.Tag = NAVTag{Kind: TagFirst}
			used, blocked = e.Guard.Evaluate(candidate, lastValid)
			if blocked {
				sample.Tag = NAVTag{Kind: TagBlocked}
			}
		} else {
			divisor := unitsAtStartOfDay
			if divisor.IsZero() {
				// The snapshot can be zero when the fund was emptied earlier
				// the same day; fall back to the live total.
				divisor = state.TotalUnits
			}
			var candidate Money
			if val, ok := ResolveValuation(feed, on, e.Lookback); ok {
				candidate = M(val.Value, ev.Amount.Currency()).DivUnits(divisor)
				if val.Effective == on {
					sample.Tag = NAVTag{Kind: TagHistorical}
				} else {
					sample.Tag = NAVTag{Kind: TagFallback, Effective: val.Effective}
				}
			} else {
				// Data gap: no valuation within the lookback window.
				candidate = lastValid
				sample.Tag = NAVTag{Kind: TagFallback}
			}
			used, blocked = e.Guard.Evaluate(candidate, lastValid)
			if blocked {
				sample.Tag = NAVTag{Kind: TagBlocked}
			}
		}
		sample.UsedNAV = used

		switch ev.Kind {
		case KindContribute:
			issued := ev.Amount.DivPrice(used)
			state.PerContributor[ev.Contributor] = state.Units(ev.Contributor).Add(issued)
			state.TotalUnits = state.TotalUnits.Add(issued)
		case KindWithdraw:
			balance, ok := state.PerContributor[ev.Contributor]
			if !ok || !balance.IsPositive() {
				return nil, fmt.Errorf("%w: withdrawal by %q with no units on %s", ErrInvalidEvent, ev.Contributor, on)
			}
			redeem := ev.Amount.DivPrice(used)
			if redeem.GreaterThan(balance) {
				if e.Strict {
					return nil, fmt.Errorf("%w: %q holds %s units, withdrawal on %s requires %s",
						ErrInsufficientUnits, ev.Contributor, balance, on, redeem)
				}
				redeem = balance
				sample.Clamped = true
			}
			state.PerContributor[ev.Contributor] = balance.Sub(redeem)
			state.TotalUnits = state.TotalUnits.Sub(redeem)
		}

		if !blocked {
			lastValid = used
		}
		state.AuditTrail = append(state.AuditTrail, sample)
	}
	return state, nil
}
