package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fundpool/fundpool"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type contributeCmd struct {
	when        string
	contributor string
	amount      string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "record a cash contribution into the fund" }
func (*contributeCmd) Usage() string {
	return `fps contribute -c <contributor> -a <amount> [-t <timestamp>]

  Appends a contribution event to the ledger. The amount is in the fund's
  base currency; the timestamp must carry a timezone offset (RFC3339) and
  defaults to now.
`
}

func (p *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.contributor, "c", "", "Contributor identifier.")
	f.StringVar(&p.amount, "a", "", "Cash amount, strictly positive.")
	f.StringVar(&p.when, "t", "", "Timestamp of the cash flow (RFC3339). Defaults to now.")
}

func (p *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ev, err := parseEvent(fundpool.KindContribute, p.when, p.contributor, p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return AppendEvent(ev)
}

// parseEvent builds and validates an event from the raw command flags.
func parseEvent(kind fundpool.EventKind, when, contributor, amount string) (fundpool.ContributionEvent, error) {
	t := time.Now()
	if when != "" {
		var err error
		t, err = time.Parse(time.RFC3339, when)
		if err != nil {
			return fundpool.ContributionEvent{}, fmt.Errorf("invalid timestamp %q, want RFC3339: %w", when, err)
		}
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fundpool.ContributionEvent{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	ev := fundpool.ContributionEvent{
		Kind:        kind,
		Time:        t,
		Contributor: contributor,
		Amount:      fundpool.M(value, *currency),
	}
	if err := ev.Validate(); err != nil {
		return fundpool.ContributionEvent{}, err
	}
	return ev, nil
}
