package fundpool

import "github.com/shopspring/decimal"

// Units is the internal accounting share representing fractional fund
// ownership. It is distinct from any traded security: units exist only inside
// this ledger and are kept at full decimal precision since rounding them
// would leak into every later NAV.
type Units struct {
	value decimal.Decimal
}

// U creates a Units value from a numeric constant.
func U[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Units {
	return Units{value: newDecimal(value)}
}

func (u Units) Equal(v Units) bool       { return u.value.Equal(v.value) }
func (u Units) LessThan(v Units) bool    { return u.value.LessThan(v.value) }
func (u Units) GreaterThan(v Units) bool { return u.value.GreaterThan(v.value) }
func (u Units) Add(v Units) Units        { return Units{value: u.value.Add(v.value)} }
func (u Units) Sub(v Units) Units        { return Units{value: u.value.Sub(v.value)} }
func (u Units) IsZero() bool             { return u.value.IsZero() }
func (u Units) IsNegative() bool         { return u.value.IsNegative() }
func (u Units) IsPositive() bool         { return u.value.IsPositive() }
func (u Units) Decimal() decimal.Decimal { return u.value }
func (u Units) String() string           { return u.value.String() }

// Ratio returns u/v as a bare decimal ratio.
func (u Units) Ratio(v Units) decimal.Decimal { return u.value.Div(v.value) }

// MarshalJSON implements the json.Marshaler interface for Units.
func (u Units) MarshalJSON() ([]byte, error) { return u.value.MarshalJSON() }

// UnmarshalJSON implements the json.Unmarshaler interface for Units.
func (u *Units) UnmarshalJSON(b []byte) error { return u.value.UnmarshalJSON(b) }
