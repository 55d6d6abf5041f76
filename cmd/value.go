package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundpool/fundpool"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type valueCmd struct {
	date  string
	value string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "record the fund's aggregated total value for a date" }
func (*valueCmd) Usage() string {
	return `fps value -v <total_value> [-d <date>]

  Records one day of the valuation feed. The value must already be aggregated
  across all holdings and converted to the fund's base currency upstream.
  An existing value for the same date is overwritten.
`
}

func (p *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.value, "v", "", "Aggregated fund total value, non-negative.")
	f.StringVar(&p.date, "d", "", "Valuation date (YYYY-MM-DD). Defaults to today.")
}

func (p *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := fundpool.Today()
	if p.date != "" {
		var err error
		on, err = fundpool.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}
	value, err := decimal.NewFromString(p.value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid value %q: %v\n", p.value, err)
		return subcommands.ExitUsageError
	}
	point, err := fundpool.NewValuationPoint(on, value)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	feed, err := DecodeFeed()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	feed.Add(point)
	if err := EncodeFeed(feed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded valuation %s on %s\n", value, on)
	return subcommands.ExitSuccess
}
