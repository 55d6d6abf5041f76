// Package cmd implements the CLI application to manage a pooled fund.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fundpool/fundpool"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&contributeCmd{}, "ledger")
	c.Register(&withdrawCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&valueCmd{}, "feed")
	c.Register(&importCmd{}, "feed")

	c.Register(&statementCmd{}, "reports")
	c.Register(&auditCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file containing contribution events (JSONL format)")
var feedFile = flag.String("feed-file", "valuations.jsonl", "Path to the valuation feed file (JSONL format)")
var timezone = flag.String("timezone", "UTC", "Fund timezone used to reduce event timestamps to calendar dates")
var currency = flag.String("currency", "EUR", "Fund base currency (display only, inputs are assumed pre-converted)")

// fundLocation resolves the fund's timezone policy.
func fundLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(*timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", *timezone, err)
	}
	return loc, nil
}

// DecodeLedger loads the ledger from the app ledger file.
func DecodeLedger() (*fundpool.Ledger, error) {
	loc, err := fundLocation()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting with an empty ledger")
		return fundpool.NewLedger(loc), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return fundpool.DecodeLedger(f, loc)
}

// DecodeFeed loads the valuation feed from the app feed file.
func DecodeFeed() (*fundpool.Feed, error) {
	f, err := os.Open(*feedFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, feed file does not exist, starting with an empty feed")
		return fundpool.NewFeed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open feed file %q: %w", *feedFile, err)
	}
	defer f.Close()
	return fundpool.DecodeFeed(f)
}

// EncodeFeed persists the feed back to the app feed file.
func EncodeFeed(feed *fundpool.Feed) error {
	f, err := os.Create(*feedFile)
	if err != nil {
		return fmt.Errorf("cannot create feed file %q: %w", *feedFile, err)
	}
	defer f.Close()
	return fundpool.EncodeFeed(f, feed)
}

// AppendEvent appends a single event to the app ledger file.
func AppendEvent(ev fundpool.ContributionEvent) subcommands.ExitStatus {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := fundpool.EncodeEvent(f, ev); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %s to %s\n", ev.Kind, *ledgerFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal through glamour, falling
// back to the raw text when rendering is not possible.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// engineFlags groups the pricing flags shared by report commands.
type engineFlags struct {
	lookback int
	minRatio float64
	strict   bool
}

func (e *engineFlags) SetFlags(f *flag.FlagSet) {
	f.IntVar(&e.lookback, "lookback", fundpool.DefaultLookback, "Valuation lookback window in calendar days.")
	f.Float64Var(&e.minRatio, "min-ratio", fundpool.DefaultMinRatio, "Sanity guard threshold: block a NAV below this ratio of the last valid one.")
	f.BoolVar(&e.strict, "strict", false, "Fail on withdrawals exceeding a contributor's balance instead of clamping.")
}

func (e *engineFlags) engine() *fundpool.NAVEngine {
	return &fundpool.NAVEngine{
		Lookback: e.lookback,
		Guard:    fundpool.NewSanityGuard(e.minRatio),
		Strict:   e.strict,
	}
}
