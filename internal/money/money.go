// Package money wraps the decimal arithmetic used for every monetary figure in
// the core. Values keep full precision through derivation and aggregation;
// rounding to 2 places happens once, at the presentation mapping boundary.
package money

import "github.com/shopspring/decimal"

var Zero = decimal.Zero

func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func FromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// SafeDiv divides a by b, yielding zero when b is zero. Division guards
// (working_days = 0 and friends) are a defined-zero fallback, never an error.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// Percent applies a percentage rate: Percent(2000, 18) = 360.
func Percent(v, rate decimal.Decimal) decimal.Decimal {
	return v.Mul(rate).Div(decimal.NewFromInt(100))
}

// Round2 is for display mapping only. Rounded figures must never be fed back
// into further arithmetic, otherwise per-row and total figures drift apart.
func Round2(v decimal.Decimal) float64 {
	return v.Round(2).InexactFloat64()
}

// Sum folds a field across a record set. Field-wise exact addition keeps the
// result identical for any permutation of the input.
func Sum[T any](items []T, field func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(field(it))
	}
	return total
}
