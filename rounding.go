package money

import "github.com/govalues/decimal"

// Rounding selects the rule used to collapse an amount to a given number
// of digits after the decimal point.
// The zero value is [BankersRounding].
type Rounding uint8

const (
	// BankersRounding rounds ties to the nearest even last digit
	// (rounding half to even).
	// It is the default mode, as it avoids accumulating an upward bias
	// over many roundings.
	BankersRounding Rounding = iota

	// HalfUp rounds ties away from zero.
	HalfUp

	// HalfDown rounds ties toward zero.
	HalfDown

	// Ceil always rounds toward positive infinity.
	Ceil

	// Floor always rounds toward negative infinity.
	Floor
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rounding) String() string {
	switch r {
	case BankersRounding:
		return "BankersRounding"
	case HalfUp:
		return "HalfUp"
	case HalfDown:
		return "HalfDown"
	case Ceil:
		return "Ceil"
	case Floor:
		return "Floor"
	}
	return "Unknown"
}

// Round returns d rounded to the given number of digits after the
// decimal point using rounding mode r.
// A negative scale is treated as 0.
// Round is total: it never fails for any representable decimal.
func (r Rounding) Round(d decimal.Decimal, scale int) decimal.Decimal {
	if scale < 0 {
		scale = 0
	}
	switch r {
	case HalfUp:
		return roundHalf(d, scale, true)
	case HalfDown:
		return roundHalf(d, scale, false)
	case Ceil:
		return d.Ceil(scale)
	case Floor:
		return d.Floor(scale)
	}
	return d.Round(scale)
}

// roundHalf truncates d to the given scale, then resolves the direction
// by comparing the discarded fraction against half a unit in the last
// kept place. Ties go away from zero if away is true, toward zero
// otherwise.
func roundHalf(d decimal.Decimal, scale int, away bool) decimal.Decimal {
	if d.Scale() <= scale {
		return d
	}
	q := d.Trunc(scale)
	rem, err := d.Sub(q)
	if err != nil {
		return d.Round(scale)
	}
	half, err := decimal.New(5, scale+1)
	if err != nil {
		return d.Round(scale)
	}
	if c := rem.CmpAbs(half); c > 0 || (c == 0 && away) {
		ulp, err := decimal.New(1, scale)
		if err != nil {
			return d.Round(scale)
		}
		if d.IsNeg() {
			q, err = q.Sub(ulp)
		} else {
			q, err = q.Add(ulp)
		}
		if err != nil {
			return d.Round(scale)
		}
	}
	return q
}
