package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundpool/fundpool"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger and feed files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fps fmt

  Validates and rewrites the ledger and feed files. Events are validated,
  sorted chronologically and written back in a canonical JSONL format; the
  feed is rewritten one day per line in chronological order.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := os.Create(*ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := fundpool.EncodeLedger(out, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	feed, err := DecodeFeed()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load feed: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeFeed(feed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write feed: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %q and %q.\n", *ledgerFile, *feedFile)
	return subcommands.ExitSuccess
}
