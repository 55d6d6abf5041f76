package fundpool

import "fmt"

// Percent is a display-ready percentage: an ownership share of the fund or a
// contributor's return. It lives at the display boundary only; the engine
// keeps ratios as full-precision decimals and converts here when a report is
// built.
type Percent float64

// Equal compares two percentages at display precision. Two shares that would
// print identically to four decimal places are the same share.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString renders a return with its sign, "-" for a flat one, so gains
// and losses read apart in a statement column.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
