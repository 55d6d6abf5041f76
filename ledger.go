package fundpool

import (
	"iter"
	"slices"
	"sort"
	"time"
)

// Ledger is the chronological record of all contribution and withdrawal
// events of one fund.
//
// In a Ledger events are always in chronological order; events with the same
// timestamp keep their insertion order.
type Ledger struct {
	events []ContributionEvent
	loc    *time.Location // date policy: one location per fund
}

// NewLedger creates an empty ledger with the given date policy.
// A nil location means UTC.
func NewLedger(loc *time.Location) *Ledger {
	if loc == nil {
		loc = time.UTC
	}
	return &Ledger{
		events: make([]ContributionEvent, 0),
		loc:    loc,
	}
}

// Location returns the single location under which event timestamps are
// reduced to calendar-date keys.
func (l *Ledger) Location() *time.Location { return l.loc }

// Len returns the number of events in the ledger.
func (l *Ledger) Len() int { return len(l.events) }

// Append validates and appends events to this ledger and maintains the
// chronological order of events.
func (l *Ledger) Append(events ...ContributionEvent) error {
	for _, e := range events {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	l.events = append(l.events, events...)
	l.stableSort()
	return nil
}

// stableSort sorts the ledger by event time. The sort is stable, meaning
// events at the same instant maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.events, func(i, j int) bool {
		return l.events[i].Time.Before(l.events[j].Time)
	})
}

// Events returns an iterator that yields each event in chronological order.
func (l *Ledger) Events() iter.Seq2[int, ContributionEvent] {
	return func(yield func(int, ContributionEvent) bool) {
		for i, e := range l.events {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Contributors iterates over the unique contributor identifiers in the
// ledger, in lexical order.
func (l *Ledger) Contributors() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, e := range l.events {
			visited[e.Contributor] = struct{}{}
		}
		names := make([]string, 0, len(visited))
		for name := range visited {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// NetContributed computes a contributor's total contributions minus total
// withdrawals. It is tracked independently of the unit math and is used only
// for dollar-return display.
func (l *Ledger) NetContributed(contributor string) Money {
	var net Money
	for _, e := range l.events {
		if e.Contributor != contributor {
			continue
		}
		switch e.Kind {
		case KindContribute:
			net = net.Add(e.Amount)
		case KindWithdraw:
			net = net.Sub(e.Amount)
		}
	}
	return net
}

// InceptionDate returns the date of the earliest event in the ledger, or the
// zero date if the ledger is empty.
func (l *Ledger) InceptionDate() Date {
	if len(l.events) == 0 {
		return Date{}
	}
	return l.events[0].On(l.loc)
}

// LastEventDate returns the date of the latest event in the ledger, or the
// zero date if the ledger is empty.
func (l *Ledger) LastEventDate() Date {
	if len(l.events) == 0 {
		return Date{}
	}
	return l.events[len(l.events)-1].On(l.loc)
}
