package fundpool

import "testing"

func TestOwnership(t *testing.T) {
	ledger := mustLedger(t,
		contribute("2024-01-01T09:00:00Z", "alice", 1000),
		contribute("2024-01-01T10:00:00Z", "bob", 500),
	)
	state, err := NewNAVEngine().Replay(ledger, NewFeed())
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}

	// The fund is now worth double its contributions.
	report := Ownership(state, ledger, MustParseDate("2024-02-01"), EUR(3000))

	wantNAV(t, report.NAV, 2)
	if len(report.Contributors) != 2 {
		t.Fatalf("len(Contributors) = %d, want 2", len(report.Contributors))
	}

	alice := report.Contributors[0]
	if alice.Contributor != "alice" {
		t.Fatalf("Contributors[0] = %s, want alice (lexical order)", alice.Contributor)
	}
	if !alice.OwnershipPct.Equal(Percent(100.0 * 1000 / 1500)) {
		t.Errorf("alice ownership = %s, want 66.67%%", alice.OwnershipPct)
	}
	if !alice.CurrentValue.Equal(EUR(2000)) {
		t.Errorf("alice value = %s, want 2000 EUR", alice.CurrentValue)
	}
	if !alice.Gain.Equal(EUR(1000)) {
		t.Errorf("alice gain = %s, want 1000 EUR", alice.Gain)
	}
	if !alice.ReturnPct.Equal(Percent(100)) {
		t.Errorf("alice return = %s, want 100%%", alice.ReturnPct)
	}

	bob := report.Contributors[1]
	if !bob.OwnershipPct.Equal(Percent(100.0 * 500 / 1500)) {
		t.Errorf("bob ownership = %s, want 33.33%%", bob.OwnershipPct)
	}
}

func TestOwnershipEmptyFund(t *testing.T) {
	// A fully redeemed fund keeps reporting: NAV falls back to the inception
	// price and nobody owns anything.
	ledger := mustLedger(t,
		contribute("2024-01-01T10:00:00Z", "alice", 1000),
		withdraw("2024-01-05T10:00:00Z", "alice", 5000),
	)
	state, err := NewNAVEngine().Replay(ledger, NewFeed())
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}

	report := Ownership(state, ledger, MustParseDate("2024-02-01"), EUR(0))
	wantNAV(t, report.NAV, 1)

	alice := report.Contributors[0]
	if !alice.OwnershipPct.Equal(Percent(0)) {
		t.Errorf("ownership = %s, want 0%%", alice.OwnershipPct)
	}
	if !alice.CurrentValue.IsZero() {
		t.Errorf("value = %s, want 0", alice.CurrentValue)
	}
	// Net contributed is 1000 while the clamped withdrawal only paid out the
	// balance, so the displayed return is the genuine loss.
	if alice.NetContributed.IsZero() {
		t.Error("NetContributed = 0, want 1000 - 5000 tracked independently")
	}
}

func TestOwnershipNoInvestment(t *testing.T) {
	// A contributor whose net contribution is not positive gets a 0 return,
	// never a division error.
	ledger := mustLedger(t,
		contribute("2024-01-01T10:00:00Z", "alice", 1000),
		withdraw("2024-06-01T10:00:00Z", "alice", 1500),
	)
	feed := feedOf(t, map[string]float64{"2024-06-01": 2000})
	state, err := NewNAVEngine().Replay(ledger, feed)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}

	report := Ownership(state, ledger, MustParseDate("2024-06-02"), EUR(500))
	alice := report.Contributors[0]
	if !alice.NetContributed.Equal(EUR(-500)) {
		t.Errorf("NetContributed = %s, want -500 EUR", alice.NetContributed)
	}
	if !alice.ReturnPct.Equal(Percent(0)) {
		t.Errorf("ReturnPct = %s, want 0%%", alice.ReturnPct)
	}
}

func TestOwnershipIsPure(t *testing.T) {
	ledger := mustLedger(t, contribute("2024-01-01T10:00:00Z", "alice", 1000))
	state, err := NewNAVEngine().Replay(ledger, NewFeed())
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	before := state.TotalUnits
	Ownership(state, ledger, MustParseDate("2024-02-01"), EUR(1234))
	if !state.TotalUnits.Equal(before) {
		t.Error("Ownership() mutated the engine state")
	}
}
