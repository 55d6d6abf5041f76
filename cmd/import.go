package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundpool/fundpool"
	"github.com/google/subcommands"
)

type importCmd struct {
	datePath  string
	valuePath string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import valuations from a broker JSON export" }
func (*importCmd) Usage() string {
	return `fps import -date-path <jsonpath> -value-path <jsonpath> <export.json>

  Extracts (date, value) pairs from an already-downloaded broker JSON export
  and merges them into the valuation feed. The two jsonpath expressions must
  select the list of dates and the list of matching total values.

Usage Examples:
$ fps import -date-path '$.history[*].date' -value-path '$.history[*].total' export.json
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.datePath, "date-path", "", "jsonpath expression selecting the valuation dates.")
	f.StringVar(&p.valuePath, "value-path", "", "jsonpath expression selecting the valuation values.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one export file argument.")
		return subcommands.ExitUsageError
	}
	if p.datePath == "" || p.valuePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -date-path and -value-path are required.")
		return subcommands.ExitUsageError
	}

	export, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer export.Close()

	points, err := fundpool.ImportFeedPoints(export, p.datePath, p.valuePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	feed, err := DecodeFeed()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, point := range points {
		feed.Add(point)
	}
	if err := EncodeFeed(feed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d valuations into %s\n", len(points), *feedFile)
	return subcommands.ExitSuccess
}
