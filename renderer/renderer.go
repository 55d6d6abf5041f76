// Package renderer produces markdown reports from the fundpool engine
// output, for the presentation layer to print or publish.
package renderer

import (
	"fmt"
	"strings"

	"github.com/fundpool/fundpool"
)

// StatementMarkdown renders a full fund statement: the current NAV, one row
// per contributor, and a warnings section when the audit trail reports
// degraded pricing.
func StatementMarkdown(r *fundpool.FundReport, trail []fundpool.NAVSample) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Fund Statement on %s\n\n", r.On)
	fmt.Fprintf(&b, "- Total value: %s\n", r.TotalValue)
	fmt.Fprintf(&b, "- Units outstanding: %s\n", r.TotalUnits)
	fmt.Fprintf(&b, "- NAV per unit: %s\n\n", r.NAV)

	fmt.Fprintln(&b, "| Contributor | Units | Ownership | Net Contributed | Current Value | Gain | Return |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, c := range r.Contributors {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			c.Contributor,
			c.Units,
			c.OwnershipPct,
			c.NetContributed,
			c.CurrentValue,
			c.Gain.SignedString(),
			c.ReturnPct.SignedString(),
		)
	}

	if warnings := Warnings(trail); len(warnings) > 0 {
		fmt.Fprintf(&b, "\n## Warnings\n\n")
		for _, w := range warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}

// AuditMarkdown renders the NAV audit trail, one row per priced event.
func AuditMarkdown(trail []fundpool.NAVSample) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# NAV Audit Trail\n\n")
	fmt.Fprintln(&b, "| Date | NAV | Source | Note |")
	fmt.Fprintln(&b, "|:---|---:|:---|:---|")
	for _, s := range trail {
		note := ""
		if s.Clamped {
			note = "withdrawal clamped to balance"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", s.On, s.UsedNAV, s.Tag, note)
	}
	return b.String()
}

// Warnings extracts the user-visible degradations from an audit trail:
// fallback pricing, blocked anomalies, and clamped withdrawals.
func Warnings(trail []fundpool.NAVSample) []string {
	var warnings []string
	for _, s := range trail {
		switch s.Tag.Kind {
		case fundpool.TagFallback:
			warnings = append(warnings, fmt.Sprintf("%s: priced with %s valuation", s.On, s.Tag))
		case fundpool.TagBlocked:
			warnings = append(warnings, fmt.Sprintf("%s: implausible valuation blocked, NAV held at %s", s.On, s.UsedNAV))
		}
		if s.Clamped {
			warnings = append(warnings, fmt.Sprintf("%s: withdrawal exceeded balance and was clamped", s.On))
		}
	}
	return warnings
}
