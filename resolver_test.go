package fundpool

import "testing"

func TestResolveValuation(t *testing.T) {
	// Friday and the following Monday are quoted, the weekend is not.
	feed := feedOf(t, map[string]float64{
		"2024-01-05": 1500,
		"2024-01-08": 1520,
	})

	tests := []struct {
		name          string
		on            string
		lookback      int
		wantValue     float64
		wantEffective string
		ok            bool
	}{
		{"exact hit", "2024-01-05", 7, 1500, "2024-01-05", true},
		{"saturday falls back to friday", "2024-01-06", 7, 1500, "2024-01-05", true},
		{"sunday falls back to friday", "2024-01-07", 7, 1500, "2024-01-05", true},
		{"nearest day wins", "2024-01-10", 7, 1520, "2024-01-08", true},
		{"window edge", "2024-01-15", 7, 1520, "2024-01-08", true},
		{"window exhausted", "2024-01-16", 7, 0, "", false},
		{"zero lookback exact only", "2024-01-06", 0, 0, "", false},
		{"negative lookback treated as zero", "2024-01-05", -3, 1500, "2024-01-05", true},
		{"before first quote", "2024-01-02", 7, 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ResolveValuation(feed, MustParseDate(tt.on), tt.lookback)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if got := v.Value.InexactFloat64(); got != tt.wantValue {
				t.Errorf("Value = %v, want %v", got, tt.wantValue)
			}
			if got := v.Effective.String(); got != tt.wantEffective {
				t.Errorf("Effective = %s, want %s", got, tt.wantEffective)
			}
		})
	}
}
