package fundpool

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// This file contains code to persist the ledger and the valuation feed as
// JSONL streams, in a way that is human-readable and git-friendly. Each line
// is one event or one valuation day; the decoders build validated records and
// reject malformed input before it can reach the engine.

// DecodeLedger decodes contribution events from a stream of JSONL data,
// validates each one, and returns a sorted Ledger using the given date policy.
func DecodeLedger(r io.Reader, loc *time.Location) (*Ledger, error) {
	ledger := NewLedger(loc)
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" {
			continue
		}
		var ev ContributionEvent
		if err := json.Unmarshal([]byte(txt), &ev); err != nil {
			return nil, fmt.Errorf("parse error on ledger line %d %q: %w", line, txt, err)
		}
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("invalid event on ledger line %d: %w", line, err)
		}
		ledger.events = append(ledger.events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}

	// Perform a stable sort on the ledger based on the event time.
	ledger.stableSort()
	return ledger, nil
}

// EncodeEvent marshals a single event to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeEvent(w io.Writer, ev ContributionEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

// EncodeLedger reorders events chronologically and persists them to an
// io.Writer in JSONL format. The sort is stable, so events at the same
// instant maintain their original relative order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()
	for _, ev := range ledger.events {
		if err := EncodeEvent(w, ev); err != nil {
			return err
		}
	}
	return nil
}

// DecodeFeed decodes a valuation feed from a stream of JSONL data. Each line
// is an object with an "on" date and a non-negative "value".
func DecodeFeed(r io.Reader) (*Feed, error) {
	feed := NewFeed()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" {
			continue
		}
		var raw struct {
			On    Date            `json:"on"`
			Value decimal.Decimal `json:"value"`
		}
		if err := json.Unmarshal([]byte(txt), &raw); err != nil {
			return nil, fmt.Errorf("parse error on feed line %d %q: %w", line, txt, err)
		}
		point, err := NewValuationPoint(raw.On, raw.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid valuation on feed line %d: %w", line, err)
		}
		feed.Add(point)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading feed: %w", err)
	}
	return feed, nil
}

// EncodeFeed persists the feed to an io.Writer in JSONL format, one day per
// line in chronological order.
func EncodeFeed(w io.Writer, feed *Feed) error {
	for p := range feed.Points() {
		var obj jsonObjectWriter
		obj.Append("on", p.On)
		obj.Append("value", p.Value)
		data, err := obj.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal valuation on %s: %w", p.On, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write valuation: %w", err)
		}
	}
	return nil
}
