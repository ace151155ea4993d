package money

import (
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// Template symbols recognized by [Money.Format] and [RawMoney.Format].
// Any other rune is copied to the output verbatim; a backslash escapes
// the rune after it.
const (
	escapeSymbol         = '\\' // escapes the next template symbol
	amountFormatSymbol   = 'a'  // the grouped absolute amount
	codeFormatSymbol     = 'c'  // the 3-letter currency code
	symbolFormatSymbol   = 's'  // the currency symbol
	minorFormatSymbol    = 'm'  // the minor-unit symbol; switches the amount to minor units
	negativeFormatSymbol = 'n'  // "-" for negative amounts, empty otherwise
)

// Built-in templates.
const (
	codeFormat        = "c na"
	symbolFormat      = "nsa"
	codeMinorFormat   = "c na m"
	symbolMinorFormat = "nsa m"
)

// minorOverflowText replaces the amount when it cannot be represented
// as an int64 count of minor units. Formatting itself never fails.
const minorOverflowText = "overflow"

// formatTemplate renders the amount d of currency c using template f.
//
// The amount substituted for 'a' is always the absolute value; the
// sign is rendered only where the template places 'n'. If the template
// mentions 'm' anywhere, the amount is rendered as a grouped integer
// count of the currency's minor units instead of a grouped decimal.
func formatTemplate(c Currency, d decimal.Decimal, f string) string {
	var amount string
	if strings.ContainsRune(f, minorFormatSymbol) {
		units, err := minorUnits(c, d)
		if err != nil {
			amount = minorOverflowText
		} else {
			amount = groupInt64Abs(units, c.ThousandSeparator())
		}
	} else {
		amount = groupDecimalAbs(c, d)
	}

	neg := ""
	if d.IsNeg() {
		neg = "-"
	}

	var b strings.Builder
	b.Grow(len(f) + len(amount))
	escaped := false
	for _, r := range f {
		if escaped {
			escaped = false
			switch r {
			case amountFormatSymbol, codeFormatSymbol, symbolFormatSymbol,
				minorFormatSymbol, negativeFormatSymbol, escapeSymbol:
				b.WriteRune(r)
				continue
			}
			// The backslash escaped nothing; keep it.
			b.WriteRune(escapeSymbol)
		} else if r == escapeSymbol {
			escaped = true
			continue
		}
		switch r {
		case amountFormatSymbol:
			b.WriteString(amount)
		case codeFormatSymbol:
			b.WriteString(c.Code())
		case symbolFormatSymbol:
			b.WriteString(c.Symbol())
		case minorFormatSymbol:
			b.WriteString(c.MinorSymbol())
		case negativeFormatSymbol:
			b.WriteString(neg)
		default:
			b.WriteRune(r)
		}
	}
	if escaped {
		b.WriteRune(escapeSymbol)
	}
	return b.String()
}

// groupDigits inserts sep between every group of 3 digits, counting
// from the right.
func groupDigits(s, sep string) string {
	if len(s) <= 3 || sep == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(sep)*(len(s)/3))
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteString(sep)
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// groupInt64Abs renders the absolute value of n with grouped digits.
func groupInt64Abs(n int64, sep string) string {
	u := uint64(n)
	if n < 0 {
		u = uint64(-(n + 1)) + 1
	}
	return groupDigits(strconv.FormatUint(u, 10), sep)
}

// groupDecimalAbs renders the absolute amount with the currency's
// separators, zero-padding the fraction to the currency's scale when
// the amount carries no fractional digits.
func groupDecimalAbs(c Currency, d decimal.Decimal) string {
	s := d.Abs().String()
	intPart, frac, hasFrac := strings.Cut(s, ".")
	grouped := groupDigits(intPart, c.ThousandSeparator())
	if !hasFrac {
		if c.Scale() == 0 {
			return grouped
		}
		frac = strings.Repeat("0", c.Scale())
	}
	return grouped + c.DecimalSeparator() + frac
}

// Format renders the value using template f.
//
// Template symbols:
//
//	a  the amount, grouped with the currency's separators, absolute
//	c  the 3-letter currency code
//	s  the currency symbol
//	m  the minor-unit symbol; its presence anywhere in the template
//	   switches 'a' to an integer count of minor units
//	n  "-" for negative amounts, nothing otherwise
//	\  escapes the next symbol
//
// Any other rune is copied verbatim. Format is total: an amount that
// does not fit in minor units renders as "overflow".
func (m Money) Format(f string) string {
	return formatTemplate(m.curr, m.value, f)
}

// FormatCode renders the value in the "c na" form, for example
// "USD -1,234.56".
func (m Money) FormatCode() string {
	return m.Format(codeFormat)
}

// FormatSymbol renders the value in the "nsa" form, for example
// "-$1,234.56".
func (m Money) FormatSymbol() string {
	return m.Format(symbolFormat)
}

// FormatCodeMinor renders the value in minor units in the "c na m"
// form, for example "USD -123,456 ¢".
func (m Money) FormatCodeMinor() string {
	return m.Format(codeMinorFormat)
}

// FormatSymbolMinor renders the value in minor units in the "nsa m"
// form, for example "-$123,456 ¢".
func (m Money) FormatSymbolMinor() string {
	return m.Format(symbolMinorFormat)
}

// Format renders the value using template f.
// See [Money.Format] for the template syntax.
func (m RawMoney) Format(f string) string {
	return formatTemplate(m.curr, m.value, f)
}

// FormatCode renders the value in the "c na" form.
func (m RawMoney) FormatCode() string {
	return m.Format(codeFormat)
}

// FormatSymbol renders the value in the "nsa" form.
func (m RawMoney) FormatSymbol() string {
	return m.Format(symbolFormat)
}

// FormatCodeMinor renders the value in minor units in the "c na m"
// form, rounding the amount to the currency's scale first.
func (m RawMoney) FormatCodeMinor() string {
	return m.Format(codeMinorFormat)
}

// FormatSymbolMinor renders the value in minor units in the "nsa m"
// form, rounding the amount to the currency's scale first.
func (m RawMoney) FormatSymbolMinor() string {
	return m.Format(symbolMinorFormat)
}
