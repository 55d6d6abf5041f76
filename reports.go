package fundpool

import "github.com/shopspring/decimal"

// OwnershipReport is one contributor's share of the fund, derived from the
// engine state and a current total valuation. Percentages are computed here,
// at the display boundary; the unit math upstream stays at full precision.
type OwnershipReport struct {
	Contributor    string
	Units          Units
	OwnershipPct   Percent
	NetContributed Money
	CurrentValue   Money
	Gain           Money
	ReturnPct      Percent
}

// FundReport is the whole fund's statement on a date: the current NAV and one
// ownership report per contributor, in lexical order.
type FundReport struct {
	On           Date
	NAV          Money
	TotalValue   Money
	TotalUnits   Units
	Contributors []OwnershipReport
}

// Ownership derives the per-contributor ownership reports from an engine
// state, the ledger (for net contributed amounts) and the fund's current
// total valuation. It is a pure function of its inputs.
func Ownership(state *EngineState, ledger *Ledger, on Date, currentValue Money) *FundReport {
	report := &FundReport{
		On:         on,
		TotalValue: currentValue,
		TotalUnits: state.TotalUnits,
	}

	// An empty fund trades at the inception price.
	if state.TotalUnits.IsZero() {
		report.NAV = M(1, currentValue.Currency())
	} else {
		report.NAV = currentValue.DivUnits(state.TotalUnits)
	}

	hundred := decimal.NewFromInt(100)
	for contributor := range ledger.Contributors() {
		units := state.Units(contributor)
		r := OwnershipReport{
			Contributor:    contributor,
			Units:          units,
			NetContributed: ledger.NetContributed(contributor),
			CurrentValue:   report.NAV.Mul(units),
		}
		if !state.TotalUnits.IsZero() {
			pct, _ := units.Ratio(state.TotalUnits).Mul(hundred).Float64()
			r.OwnershipPct = Percent(pct)
		}
		r.Gain = r.CurrentValue.Sub(r.NetContributed)
		// By convention the return is 0 when nothing is invested, never an error.
		if r.NetContributed.IsPositive() {
			ret, _ := r.Gain.Decimal().Div(r.NetContributed.Decimal()).Mul(hundred).Float64()
			r.ReturnPct = Percent(ret)
		}
		report.Contributors = append(report.Contributors, r)
	}
	return report
}
