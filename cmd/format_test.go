package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// Helper function to create a temporary data file
func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}

// useDataFiles points the app globals at temp files for one test.
func useDataFiles(t *testing.T, ledger, feed string) {
	t.Helper()
	oldLedger, oldFeed := *ledgerFile, *feedFile
	*ledgerFile, *feedFile = ledger, feed
	t.Cleanup(func() { *ledgerFile, *feedFile = oldLedger, oldFeed })
}

func TestFmtCanonicalizes(t *testing.T) {
	// Events out of order, a blank line, and an unquoted-field feed day.
	ledgerContent := `{"kind":"contribute","time":"2024-01-05T10:00:00Z","contributor":"bob","amount":"200","currency":"EUR"}

{"kind":"contribute","time":"2024-01-01T10:00:00Z","contributor":"alice","amount":"100","currency":"EUR"}
`
	feedContent := `{"on":"2024-01-05","value":"1500"}
{"on":"2024-01-01","value":"1000"}
`
	wantLedger := `{"kind":"contribute","time":"2024-01-01T10:00:00Z","contributor":"alice","amount":"100","currency":"EUR"}
{"kind":"contribute","time":"2024-01-05T10:00:00Z","contributor":"bob","amount":"200","currency":"EUR"}
`
	wantFeed := `{"on":"2024-01-01","value":"1000"}
{"on":"2024-01-05","value":"1500"}
`
	useDataFiles(t,
		createTempFile(t, "ledger.jsonl", ledgerContent),
		createTempFile(t, "valuations.jsonl", feedContent),
	)

	cmd := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}

	gotLedger, err := os.ReadFile(*ledgerFile)
	if err != nil {
		t.Fatalf("ReadFile(ledger) failed: %v", err)
	}
	if string(gotLedger) != wantLedger {
		t.Errorf("ledger = %q, want %q", gotLedger, wantLedger)
	}
	gotFeed, err := os.ReadFile(*feedFile)
	if err != nil {
		t.Fatalf("ReadFile(feed) failed: %v", err)
	}
	if string(gotFeed) != wantFeed {
		t.Errorf("feed = %q, want %q", gotFeed, wantFeed)
	}
}

func TestFmtRejectsCorruptLedger(t *testing.T) {
	useDataFiles(t,
		createTempFile(t, "ledger.jsonl", "{broken\n"),
		createTempFile(t, "valuations.jsonl", ""),
	)

	cmd := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Errorf("Execute() = %v, want ExitFailure", status)
	}
}
