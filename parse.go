package money

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// Parse converts a string to a (rounded) money value.
// The input string must be in one of the following formats:
//
//	USD 123.45
//	USD -123.45
//	USD 1,234,567.89
//	EUR 1.234.567,89
//
// The first token must be a 3-letter currency code known to
// [ParseCurr]; the second is the amount. The amount is matched first against the
// comma-thousands grammar (comma groups the integer digits, dot is the
// decimal separator) and, if that fails, against the dot-thousands
// grammar (dot groups, comma separates). Grouped integer digits must
// come in a 1-3 digit leading group followed by exactly-3-digit groups.
//
// Parse returns an error wrapping [ErrParse] if the string does not
// match either grammar, and an error wrapping [ErrInvalidCurrency] if
// the currency is unknown.
//
// See also methods [ParseRaw] and [ParseSymbol].
func Parse(s string) (Money, error) {
	c, d, err := parseParts(s)
	if err != nil {
		return Money{}, err
	}
	return New(c, d)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding
// monetary values.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return m
}

// ParseRaw converts a string to a raw money value.
// ParseRaw accepts the same formats as [Parse] but never rounds the
// amount: all parsed fractional digits are kept.
func ParseRaw(s string) (RawMoney, error) {
	c, d, err := parseParts(s)
	if err != nil {
		return RawMoney{}, err
	}
	return NewRaw(c, d), nil
}

// ParseSymbol converts a symbol-prefixed string to a (rounded) money
// value denominated in currency c.
// The input string must be the currency's symbol immediately followed
// by an amount grouped with the currency's separators, optionally
// preceded by a minus sign:
//
//	$123.45
//	-$1,234.56
//	€1.234,56
//
// A minus sign after the symbol is rejected.
//
// ParseSymbol returns an error wrapping [ErrParse] if the string does
// not match the grammar.
func ParseSymbol(c Currency, s string) (Money, error) {
	d, err := parseSymbolAmount(c, s)
	if err != nil {
		return Money{}, err
	}
	return New(c, d)
}

// ParseRawSymbol is like [ParseSymbol] but returns a raw money value,
// keeping all parsed fractional digits.
func ParseRawSymbol(c Currency, s string) (RawMoney, error) {
	d, err := parseSymbolAmount(c, s)
	if err != nil {
		return RawMoney{}, err
	}
	return NewRaw(c, d), nil
}

func parseParts(s string) (Currency, decimal.Decimal, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 || len(fields[0]) != 3 || !isAlpha(fields[0]) {
		return Currency{}, decimal.Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrParse)
	}
	c, err := ParseCurr(fields[0])
	if err != nil {
		return Currency{}, decimal.Decimal{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	norm, ok := normalizeAmount(fields[1], ",", ".")
	if !ok {
		norm, ok = normalizeAmount(fields[1], ".", ",")
	}
	if !ok {
		return Currency{}, decimal.Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrParse)
	}
	d, err := decimal.Parse(norm)
	if err != nil {
		return Currency{}, decimal.Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrParse)
	}
	return c, d, nil
}

func parseSymbolAmount(c Currency, s string) (decimal.Decimal, error) {
	t := s
	neg := false
	if strings.HasPrefix(t, "-") {
		neg = true
		t = t[1:]
	}
	rest, ok := strings.CutPrefix(t, c.Symbol())
	if !ok || rest == "" || strings.HasPrefix(rest, "-") {
		return decimal.Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrParse)
	}
	norm, ok := normalizeAmount(rest, c.ThousandSeparator(), c.DecimalSeparator())
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrParse)
	}
	if neg {
		norm = "-" + norm
	}
	d, err := decimal.Parse(norm)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrParse)
	}
	return d, nil
}

// normalizeAmount validates a grouped amount against the given
// separator pair and rewrites it into the plain "[-]digits[.digits]"
// form accepted by [decimal.Parse].
func normalizeAmount(s, thousandSep, decimalSep string) (string, bool) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, decimalSep)
	if hasFrac && (frac == "" || !isDigits(frac)) {
		return "", false
	}
	intPart, ok := ungroup(intPart, thousandSep)
	if !ok {
		return "", false
	}
	var b strings.Builder
	b.Grow(len(s) + 1)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String(), true
}

// ungroup strips the thousands separators from the integer digits,
// requiring a 1-3 digit leading group and exactly-3-digit groups after
// it. An ungrouped run of digits of any length is also accepted.
func ungroup(s, sep string) (string, bool) {
	if s == "" {
		return "", false
	}
	if !strings.Contains(s, sep) {
		return s, isDigits(s)
	}
	groups := strings.Split(s, sep)
	for i, g := range groups {
		if i == 0 {
			if len(g) < 1 || len(g) > 3 || !isDigits(g) {
				return "", false
			}
			continue
		}
		if len(g) != 3 || !isDigits(g) {
			return "", false
		}
	}
	return strings.Join(groups, ""), true
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if (b < 'a' || b > 'z') && (b < 'A' || b > 'Z') {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
