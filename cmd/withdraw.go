package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundpool/fundpool"
	"github.com/google/subcommands"
)

type withdrawCmd struct {
	when        string
	contributor string
	amount      string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a cash withdrawal from the fund" }
func (*withdrawCmd) Usage() string {
	return `fps withdraw -c <contributor> -a <amount> [-t <timestamp>]

  Appends a withdrawal event to the ledger. The amount is the positive cash
  amount leaving the fund.
`
}

func (p *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.contributor, "c", "", "Contributor identifier.")
	f.StringVar(&p.amount, "a", "", "Cash amount, strictly positive.")
	f.StringVar(&p.when, "t", "", "Timestamp of the cash flow (RFC3339). Defaults to now.")
}

func (p *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ev, err := parseEvent(fundpool.KindWithdraw, p.when, p.contributor, p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return AppendEvent(ev)
}
