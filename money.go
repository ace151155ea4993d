package money

import (
	"database/sql/driver"
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Money represents a monetary amount in a particular currency, rounded
// to the currency's scale.
//
// Money is the auto-rounding flavor: every constructor and every
// arithmetic result is passed through the currency's rounding mode at
// the currency's scale before being stored, so the amount always
// carries exactly as many fractional digits as the currency's minor
// unit. Use [RawMoney] when intermediate results must keep their full
// precision.
//
// Money is an immutable value type and is safe for concurrent use by
// multiple goroutines.
type Money struct {
	curr  Currency        // currency descriptor
	value decimal.Decimal // monetary amount
}

// newMoneyUnsafe creates a new money value without rounding or checking
// the scale. Use it only if you are absolutely sure that the arguments
// are valid.
func newMoneyUnsafe(c Currency, d decimal.Decimal) Money {
	return Money{curr: c, value: d}
}

// newMoneySafe rounds d using the currency's rounding mode and
// zero-pads it to the currency's scale.
func newMoneySafe(c Currency, d decimal.Decimal) (Money, error) {
	d = c.Rounding().Round(d, c.Scale())
	if d.Scale() < c.Scale() {
		d = d.Pad(c.Scale())
		if d.Scale() < c.Scale() {
			return Money{}, fmt.Errorf("padding amount: %w", ErrOverflow)
		}
	}
	return newMoneyUnsafe(c, d), nil
}

// New returns a money value equal to d, rounded to the scale of the
// currency using the currency's rounding mode.
//
// New returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Currency.Scale]) digits.
// For example, when the currency is US dollars, New returns an error if
// the integer part of the result has more than 17 digits (19 - 2 = 17).
func New(c Currency, d decimal.Decimal) (Money, error) {
	m, err := newMoneySafe(c, d)
	if err != nil {
		return Money{}, fmt.Errorf("converting amount: %w", err)
	}
	return m, nil
}

// MustNew is like [New] but panics if the value cannot be constructed.
// It simplifies safe initialization of global variables holding
// monetary values.
func MustNew(c Currency, d decimal.Decimal) Money {
	m, err := New(c, d)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", c, d, err))
	}
	return m
}

// FromMinorUnits converts an integer, representing minor units of the
// currency (e.g. cents, pennies, fens), to a money value equal to
// units / 10^[Currency.Scale].
// See also method [Money.MinorUnits].
//
// FromMinorUnits returns an error wrapping [ErrConversion] if the
// integer cannot be represented at the currency's scale.
func FromMinorUnits(c Currency, units int64) (Money, error) {
	d, err := decimal.New(units, c.Scale())
	if err != nil {
		return Money{}, fmt.Errorf("converting minor units: %w", ErrConversion)
	}
	return newMoneySafe(c, d)
}

// Curr returns the currency of the value.
func (m Money) Curr() Currency {
	return m.curr
}

// Amount returns the decimal amount of the value.
func (m Money) Amount() decimal.Decimal {
	return m.value
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.value.Sign()
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// IsNeg returns true if the amount is negative.
func (m Money) IsNeg() bool {
	return m.value.IsNeg()
}

// IsPos returns true if the amount is positive.
func (m Money) IsPos() bool {
	return m.value.IsPos()
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	return newMoneyUnsafe(m.curr, m.value.Abs())
}

// Neg returns a value with the opposite sign.
func (m Money) Neg() Money {
	return newMoneyUnsafe(m.curr, m.value.Neg())
}

// SameCurr returns true if both values are denominated in the same
// currency. Currency identity is defined solely by code.
func (m Money) SameCurr(b Money) bool {
	return m.curr.Equal(b.curr)
}

// Add returns the (rounded) sum of values m and b.
//
// Add returns an error wrapping:
//   - [ErrCurrencyMismatch] if the values are denominated in different
//     currencies;
//   - [ErrOverflow] if the checked sum exceeds the representable range.
//
// See also method [Money.MustAdd].
func (m Money) Add(b Money) (Money, error) {
	r, err := m.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return r, nil
}

func (m Money) add(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	return m.addDecimal(b.value)
}

// AddDecimal returns the (rounded) sum of value m and the
// currency-agnostic decimal amount e.
func (m Money) AddDecimal(e decimal.Decimal) (Money, error) {
	r, err := m.addDecimal(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, e, err)
	}
	return r, nil
}

func (m Money) addDecimal(e decimal.Decimal) (Money, error) {
	d, err := m.value.AddExact(e, m.curr.Scale())
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return newMoneySafe(m.curr, d)
}

// Sub returns the (rounded) difference between values m and b.
//
// Sub returns an error wrapping:
//   - [ErrCurrencyMismatch] if the values are denominated in different
//     currencies;
//   - [ErrOverflow] if the checked difference exceeds the representable
//     range.
//
// See also method [Money.MustSub].
func (m Money) Sub(b Money) (Money, error) {
	r, err := m.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return r, nil
}

func (m Money) sub(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	return m.subDecimal(b.value)
}

// SubDecimal returns the (rounded) difference between value m and the
// currency-agnostic decimal amount e.
func (m Money) SubDecimal(e decimal.Decimal) (Money, error) {
	r, err := m.subDecimal(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, e, err)
	}
	return r, nil
}

func (m Money) subDecimal(e decimal.Decimal) (Money, error) {
	d, err := m.value.SubExact(e, m.curr.Scale())
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return newMoneySafe(m.curr, d)
}

// Mul returns the (rounded) product of values m and b.
//
// Mul returns an error wrapping:
//   - [ErrCurrencyMismatch] if the values are denominated in different
//     currencies;
//   - [ErrOverflow] if the checked product exceeds the representable
//     range.
//
// See also method [Money.MustMul].
func (m Money) Mul(b Money) (Money, error) {
	r, err := m.mul(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, b, err)
	}
	return r, nil
}

func (m Money) mul(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	return m.mulDecimal(b.value)
}

// MulDecimal returns the (rounded) product of value m and the
// currency-agnostic decimal factor e.
func (m Money) MulDecimal(e decimal.Decimal) (Money, error) {
	r, err := m.mulDecimal(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return r, nil
}

func (m Money) mulDecimal(e decimal.Decimal) (Money, error) {
	d, err := m.value.MulExact(e, m.curr.Scale())
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return newMoneySafe(m.curr, d)
}

// Div returns the (rounded) quotient of values m and b.
//
// Div returns an error wrapping:
//   - [ErrCurrencyMismatch] if the values are denominated in different
//     currencies;
//   - [ErrDivisionByZero] if the divisor is zero;
//   - [ErrOverflow] if the checked quotient exceeds the representable
//     range.
//
// See also method [Money.MustDiv].
func (m Money) Div(b Money) (Money, error) {
	r, err := m.div(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, b, err)
	}
	return r, nil
}

func (m Money) div(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	return m.divDecimal(b.value)
}

// DivDecimal returns the (rounded) quotient of value m and the
// currency-agnostic decimal divisor e.
func (m Money) DivDecimal(e decimal.Decimal) (Money, error) {
	r, err := m.divDecimal(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return r, nil
}

func (m Money) divDecimal(e decimal.Decimal) (Money, error) {
	if e.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	d, err := m.value.QuoExact(e, m.curr.Scale())
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return newMoneySafe(m.curr, d)
}

// MustAdd is like [Money.Add] but panics on any error.
// It is intended for code that has already established that both
// operands share a currency and cannot overflow; the panic message
// names the violated invariant.
func (m Money) MustAdd(b Money) Money {
	r, err := m.Add(b)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%q, %q) failed: %v", m, b, err))
	}
	return r
}

// MustSub is like [Money.Sub] but panics on any error.
func (m Money) MustSub(b Money) Money {
	r, err := m.Sub(b)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%q, %q) failed: %v", m, b, err))
	}
	return r
}

// MustMul is like [Money.Mul] but panics on any error.
func (m Money) MustMul(b Money) Money {
	r, err := m.Mul(b)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%q, %q) failed: %v", m, b, err))
	}
	return r
}

// MustDiv is like [Money.Div] but panics on any error, including
// division by zero.
func (m Money) MustDiv(b Money) Money {
	r, err := m.Div(b)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%q, %q) failed: %v", m, b, err))
	}
	return r
}

// Cmp compares values and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error wrapping [ErrCurrencyMismatch] if the values are
// denominated in different currencies.
func (m Money) Cmp(b Money) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrCurrencyMismatch)
	}
	return m.value.Cmp(b.value), nil
}

// Equal returns true if both values are denominated in the same
// currency and are numerically equal.
// Unlike ==, Equal ignores the presentation state of the currency and
// the scale of the amount.
func (m Money) Equal(b Money) bool {
	return m.SameCurr(b) && m.value.Cmp(b.value) == 0
}

// Min returns the smaller value.
//
// Min returns an error wrapping [ErrCurrencyMismatch] if the values are
// denominated in different currencies.
func (m Money) Min(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c <= 0:
		return m, nil
	default:
		return b, nil
	}
}

// Max returns the larger value.
//
// Max returns an error wrapping [ErrCurrencyMismatch] if the values are
// denominated in different currencies.
func (m Money) Max(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c >= 0:
		return m, nil
	default:
		return b, nil
	}
}

// Clamp compares values and returns:
//
//	lo if m < lo
//	hi if m > hi
//	 m otherwise
//
// Clamp returns an error if the values are denominated in different
// currencies or if lo is greater than hi.
func (m Money) Clamp(lo, hi Money) (Money, error) {
	switch c, err := lo.Cmp(hi); {
	case err != nil:
		return Money{}, err
	case c > 0:
		return Money{}, fmt.Errorf("clamping %v: invalid range", m)
	}
	switch c, err := m.Cmp(lo); {
	case err != nil:
		return Money{}, err
	case c < 0:
		return lo, nil
	}
	switch c, err := m.Cmp(hi); {
	case err != nil:
		return Money{}, err
	case c > 0:
		return hi, nil
	}
	return m, nil
}

// minorUnits converts d to an integer count of the currency's minor
// units, rounding with the currency's mode if d has extra fractional
// digits.
func minorUnits(c Currency, d decimal.Decimal) (int64, error) {
	d = c.Rounding().Round(d, c.Scale()).Pad(c.Scale())
	if d.Scale() != c.Scale() {
		return 0, fmt.Errorf("converting %v to minor units: %w", d, ErrConversion)
	}
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return 0, fmt.Errorf("converting %v to minor units: %w", d, ErrConversion)
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("converting %v to minor units: %w", d, ErrConversion)
	}
	return int64(u), nil
}

// MinorUnits returns the amount as an integer count of the currency's
// minor units (e.g. cents, pennies, fens).
// See also constructor [FromMinorUnits].
//
// MinorUnits returns an error wrapping [ErrConversion] if the scaled
// amount cannot be represented as an int64.
func (m Money) MinorUnits() (int64, error) {
	return minorUnits(m.curr, m.value)
}

// Round re-applies the currency's rounding mode at the currency's
// scale. Money values are already rounded on construction, so Round is
// idempotent: rounding an already-rounded value is a no-op.
func (m Money) Round() Money {
	d := m.curr.Rounding().Round(m.value, m.curr.Scale()).Pad(m.curr.Scale())
	return newMoneyUnsafe(m.curr, d)
}

// RoundWith returns the value rounded to the given number of digits
// after the decimal point using mode r, zero-padded back to the
// currency's scale.
func (m Money) RoundWith(scale int, r Rounding) Money {
	d := r.Round(m.value, scale).Pad(m.curr.Scale())
	return newMoneyUnsafe(m.curr, d)
}

// Raw converts the value to the non-rounding [RawMoney] flavor.
// The conversion is lossless: the amount is carried over unchanged and
// only the auto-rounding guarantee is dropped.
// See also method [RawMoney.Finish].
func (m Money) Raw() RawMoney {
	return RawMoney{curr: m.curr, value: m.value}
}

// String implements the [fmt.Stringer] interface and returns the
// "<CODE> <amount>" form of the value, without digit grouping, for
// example "USD 1234.56". The result is accepted by [Parse].
// See also methods [Money.Format] and [Money.FormatCode].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.curr.Code() + " " + m.value.String()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *Money) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	*m = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the "<CODE> <amount>" form.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [Parse].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Money) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return m.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the quoted "<CODE> <amount>" form.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	s := m.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (m *Money) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*m, err = Parse(value)
	case []byte:
		*m, err = Parse(string(value))
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Money{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}
