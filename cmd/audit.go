package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundpool/fundpool/renderer"
	"github.com/google/subcommands"
)

type auditCmd struct {
	engineFlags
}

func (*auditCmd) Name() string     { return "audit" }
func (*auditCmd) Synopsis() string { return "show the NAV used to price every ledger event" }
func (*auditCmd) Usage() string {
	return `fps audit [-lookback <days>] [-min-ratio <ratio>] [-strict]

  Replays the whole ledger and renders the NAV audit trail: for each event,
  the NAV used and where it came from (exact feed date, fallback, blocked).
`
}

func (p *auditCmd) SetFlags(f *flag.FlagSet) {
	p.engineFlags.SetFlags(f)
}

func (p *auditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.AuditMarkdown(state.AuditTrail))
	return subcommands.ExitSuccess
}
