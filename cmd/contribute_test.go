package cmd

import (
	"context"
	"flag"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fundpool/fundpool"
	"github.com/google/subcommands"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name        string
		when        string
		contributor string
		amount      string
		wantErr     bool
	}{
		{"valid", "2024-01-01T10:00:00Z", "alice", "1000", false},
		{"valid with offset", "2024-01-01T10:00:00+02:00", "alice", "0.01", false},
		{"default time", "", "alice", "1000", false},
		{"bad timestamp", "yesterday", "alice", "1000", true},
		{"bad amount", "2024-01-01T10:00:00Z", "alice", "one grand", true},
		{"zero amount", "2024-01-01T10:00:00Z", "alice", "0", true},
		{"negative amount", "2024-01-01T10:00:00Z", "alice", "-5", true},
		{"missing contributor", "2024-01-01T10:00:00Z", "", "1000", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := parseEvent(fundpool.KindContribute, tt.when, tt.contributor, tt.amount)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseEvent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if ev.Contributor != tt.contributor {
				t.Errorf("Contributor = %q, want %q", ev.Contributor, tt.contributor)
			}
			if tt.when == "" && time.Since(ev.Time) > time.Minute {
				t.Errorf("Time = %s, want about now", ev.Time)
			}
		})
	}
}

func TestContributeAppends(t *testing.T) {
	useDataFiles(t,
		createTempFile(t, "ledger.jsonl", ""),
		createTempFile(t, "valuations.jsonl", ""),
	)

	cmd := &contributeCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-c", "alice", "-a", "1000", "-t", "2024-01-01T10:00:00Z"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}

	// A second run must append, not truncate.
	wcmd := &withdrawCmd{}
	wf := flag.NewFlagSet("test", flag.ContinueOnError)
	wcmd.SetFlags(wf)
	if err := wf.Parse([]string{"-c", "alice", "-a", "250", "-t", "2024-02-01T10:00:00Z"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if status := wcmd.Execute(context.Background(), wf); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}

	data, err := os.ReadFile(*ledgerFile)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("ledger has %d lines, want 2: %q", len(lines), data)
	}
	if !strings.Contains(lines[0], `"kind":"contribute"`) || !strings.Contains(lines[1], `"kind":"withdraw"`) {
		t.Errorf("ledger lines = %q, want a contribution then a withdrawal", lines)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}
	if ledger.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ledger.Len())
	}
}
