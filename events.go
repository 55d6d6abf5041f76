package fundpool

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidEvent reports a structurally invalid event: a caller or data bug
// that must fail loudly instead of silently producing wrong financial output.
var ErrInvalidEvent = errors.New("invalid event")

// EventKind is a typed string identifying the direction of a cash flow.
type EventKind string

// Event kinds recorded in the ledger.
const (
	KindContribute EventKind = "contribute"
	KindWithdraw   EventKind = "withdraw"
)

// ContributionEvent is a single cash flow by a contributor into or out of the
// pooled fund. Events are immutable once appended to the ledger.
type ContributionEvent struct {
	Kind        EventKind
	Time        time.Time // timezone-aware instant of the cash flow
	Contributor string
	Amount      Money // strictly positive, in the fund's base currency
}

// NewContribution creates a contribution event.
func NewContribution(t time.Time, contributor string, amount Money) ContributionEvent {
	return ContributionEvent{Kind: KindContribute, Time: t, Contributor: contributor, Amount: amount}
}

// NewWithdrawal creates a withdrawal event. The amount is the positive cash
// amount leaving the fund.
func NewWithdrawal(t time.Time, contributor string, amount Money) ContributionEvent {
	return ContributionEvent{Kind: KindWithdraw, Time: t, Contributor: contributor, Amount: amount}
}

// On returns the calendar date key of the event under the fund's date policy.
func (e ContributionEvent) On(loc *time.Location) Date { return DateOf(e.Time, loc) }

// Validate checks the event for structural correctness.
func (e ContributionEvent) Validate() error {
	switch e.Kind {
	case KindContribute, KindWithdraw:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidEvent, e.Kind)
	}
	if e.Time.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidEvent)
	}
	if e.Contributor == "" {
		return fmt.Errorf("%w: missing contributor", ErrInvalidEvent)
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be strictly positive, got %s", ErrInvalidEvent, e.Amount.Decimal())
	}
	return nil
}

// Equal reports whether two events describe the same cash flow.
func (e ContributionEvent) Equal(o ContributionEvent) bool {
	return e.Kind == o.Kind &&
		e.Time.Equal(o.Time) &&
		e.Contributor == o.Contributor &&
		e.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for ContributionEvent.
// Fields are written in a canonical order so the ledger file diffs cleanly.
func (e ContributionEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", e.Kind)
	w.Append("time", e.Time.Format(time.RFC3339))
	w.Append("contributor", e.Contributor)
	w.Append("amount", e.Amount.Decimal())
	w.Optional("currency", e.Amount.Currency())
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for ContributionEvent.
func (e *ContributionEvent) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind        EventKind       `json:"kind"`
		Time        string          `json:"time"`
		Contributor string          `json:"contributor"`
		Amount      decimal.Decimal `json:"amount"`
		Currency    string          `json:"currency"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339, raw.Time)
	if err != nil {
		return fmt.Errorf("invalid event time %q, want RFC3339: %w", raw.Time, err)
	}
	*e = ContributionEvent{
		Kind:        raw.Kind,
		Time:        t,
		Contributor: raw.Contributor,
		Amount:      M(raw.Amount, raw.Currency),
	}
	return nil
}
