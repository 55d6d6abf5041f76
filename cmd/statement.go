package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fundpool/fundpool"
	"github.com/fundpool/fundpool/renderer"
	"github.com/google/subcommands"
)

type statementCmd struct {
	date string
	engineFlags
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "show each contributor's ownership and return" }
func (*statementCmd) Usage() string {
	return `fps statement [-d <date>] [-lookback <days>] [-min-ratio <ratio>] [-strict]

  Replays the whole ledger against the valuation feed and renders the fund
  statement on the given date: NAV per unit, outstanding units, and each
  contributor's ownership, dollar value and return. Degraded pricing
  (fallback valuations, blocked anomalies) surfaces as warnings.
`
}

func (p *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Statement date (YYYY-MM-DD). Defaults to today.")
	p.engineFlags.SetFlags(f)
}

func (p *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := fundpool.Today()
	if p.date != "" {
		var err error
		on, err = fundpool.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	feed, err := DecodeFeed()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	state, err := p.engine().Replay(ledger, feed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	current := currentValue(feed, state, on, p.lookback)
	report := fundpool.Ownership(state, ledger, on, current)
	printMarkdown(renderer.StatementMarkdown(report, state.AuditTrail))
	return subcommands.ExitSuccess
}

// currentValue picks the valuation to price the statement with: the resolved
// feed value for the date, else the latest feed value, else the inception
// price applied to the outstanding units.
func currentValue(feed *fundpool.Feed, state *fundpool.EngineState, on fundpool.Date, lookback int) fundpool.Money {
	if val, ok := fundpool.ResolveValuation(feed, on, lookback); ok {
		return fundpool.M(val.Value, *currency)
	}
	if day, v, ok := feed.Latest(); ok {
		log.Printf("no valuation within %d days of %s, using latest from %s", lookback, on, day)
		return fundpool.M(v, *currency)
	}
	log.Printf("empty valuation feed, pricing at inception")
	return fundpool.M(state.TotalUnits.Decimal(), *currency)
}
