package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/govalues/decimal"
)

// RawMoney represents a monetary amount in a particular currency at
// full precision.
//
// RawMoney is the non-rounding flavor: constructors and arithmetic
// never round, so a chain of operations accumulates no rounding error.
// Call [RawMoney.Finish] to round the final result to the currency's
// scale and obtain a [Money].
//
// RawMoney is an immutable value type and is safe for concurrent use by
// multiple goroutines.
type RawMoney struct {
	curr  Currency        // currency descriptor
	value decimal.Decimal // monetary amount
}

// NewRaw returns a raw money value equal to d.
// The amount is stored as is: no rounding, no padding.
func NewRaw(c Currency, d decimal.Decimal) RawMoney {
	return RawMoney{curr: c, value: d}
}

// RawFromMinorUnits converts an integer, representing minor units of
// the currency, to a raw money value equal to
// units / 10^[Currency.Scale].
// See also method [RawMoney.MinorUnits].
func RawFromMinorUnits(c Currency, units int64) (RawMoney, error) {
	d, err := decimal.New(units, c.Scale())
	if err != nil {
		return RawMoney{}, fmt.Errorf("converting minor units: %w", ErrConversion)
	}
	return NewRaw(c, d), nil
}

// Curr returns the currency of the value.
func (m RawMoney) Curr() Currency {
	return m.curr
}

// Amount returns the decimal amount of the value.
func (m RawMoney) Amount() decimal.Decimal {
	return m.value
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m RawMoney) Sign() int {
	return m.value.Sign()
}

// IsZero returns true if the amount is zero.
func (m RawMoney) IsZero() bool {
	return m.value.IsZero()
}

// IsNeg returns true if the amount is negative.
func (m RawMoney) IsNeg() bool {
	return m.value.IsNeg()
}

// IsPos returns true if the amount is positive.
func (m RawMoney) IsPos() bool {
	return m.value.IsPos()
}

// Abs returns the absolute value of the amount.
func (m RawMoney) Abs() RawMoney {
	return NewRaw(m.curr, m.value.Abs())
}

// Neg returns a value with the opposite sign.
func (m RawMoney) Neg() RawMoney {
	return NewRaw(m.curr, m.value.Neg())
}

// SameCurr returns true if both values are denominated in the same
// currency. Currency identity is defined solely by code.
func (m RawMoney) SameCurr(b RawMoney) bool {
	return m.curr.Equal(b.curr)
}

// Add returns the exact sum of values m and b, without rounding.
//
// Add returns an error wrapping:
//   - [ErrCurrencyMismatch] if the values are denominated in different
//     currencies;
//   - [ErrOverflow] if the sum exceeds the representable range.
//
// See also method [RawMoney.MustAdd].
func (m RawMoney) Add(b RawMoney) (RawMoney, error) {
	r, err := m.add(b)
	if err != nil {
		return RawMoney{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return r, nil
}

func (m RawMoney) add(b RawMoney) (RawMoney, error) {
	if !m.SameCurr(b) {
		return RawMoney{}, ErrCurrencyMismatch
	}
	return m.addDecimal(b.value)
}

// AddDecimal returns the exact sum of value m and the currency-agnostic
// decimal amount e, without rounding.
func (m RawMoney) AddDecimal(e decimal.Decimal) (RawMoney, error) {
	r, err := m.addDecimal(e)
	if err != nil {
		return RawMoney{}, fmt.Errorf("computing [%v + %v]: %w", m, e, err)
	}
	return r, nil
}

func (m RawMoney) addDecimal(e decimal.Decimal) (RawMoney, error) {
	d, err := m.value.Add(e)
	if err != nil {
		return RawMoney{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return NewRaw(m.curr, d), nil
}

// Sub returns the exact difference between values m and b, without
// rounding.
//
// Sub returns an error wrapping:
//   - [ErrCurrencyMismatch] if the values are denominated in different
//     currencies;
//   - [ErrOverflow] if the difference exceeds the representable range.
//
// See also method [RawMoney.MustSub].
func (m RawMoney) Sub(b RawMoney) (RawMoney, error) {
	r, err := m.sub(b)
	if err != nil {
		return RawMoney{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return r, nil
}

func (m RawMoney) sub(b RawMoney) (RawMoney, error) {
	if !m.SameCurr(b) {
		return RawMoney{}, ErrCurrencyMismatch
	}
	return m.subDecimal(b.value)
}

// SubDecimal returns the exact difference between value m and the
// currency-agnostic decimal amount e, without rounding.
func (m RawMoney) SubDecimal(e decimal.Decimal) (RawMoney, error) {
	r, err := m.subDecimal(e)
	if err != nil {
		return RawMoney{}, fmt.Errorf("computing [%v - %v]: %w", m, e, err)
	}
	return r, nil
}

func (m RawMoney) subDecimal(e decimal.Decimal) (RawMoney, error) {
	d, err := m.value.Sub(e)
	if err != nil {
		return RawMoney{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return NewRaw(m.curr, d), nil
}

// Mul returns the exact product of values m and b, without rounding.
//
// Mul returns an error wrapping:
//   - [ErrCurrencyMismatch] if the values are denominated in different
//     currencies;
//   - [ErrOverflow] if the product exceeds the representable range.
//
// See also method [RawMoney.MustMul].
func (m RawMoney) Mul(b RawMoney) (RawMoney, error) {
	r, err := m.mul(b)
	if err != nil {
		return RawMoney{}, fmt.Errorf("computing [%v * %v]: %w", m, b, err)
	}
	return r, nil
}

func (m RawMoney) mul(b RawMoney) (RawMoney, error) {
	if !m.SameCurr(b) {
		return RawMoney{}, ErrCurrencyMismatch
	}
	return m.mulDecimal(b.value)
}

// MulDecimal returns the exact product of value m and the
// currency-agnostic decimal factor e, without rounding.
func (m RawMoney) MulDecimal(e decimal.Decimal) (RawMoney, error) {
	r, err := m.mulDecimal(e)
	if err != nil {
		return RawMoney{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return r, nil
}

func (m RawMoney) mulDecimal(e decimal.Decimal) (RawMoney, error) {
	d, err := m.value.Mul(e)
	if err != nil {
		return RawMoney{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return NewRaw(m.curr, d), nil
}

// Div returns the quotient of values m and b, computed to the full
// supported precision.
//
// Div returns an error wrapping:
//   - [ErrCurrencyMismatch] if the values are denominated in different
//     currencies;
//   - [ErrDivisionByZero] if the divisor is zero;
//   - [ErrOverflow] if the quotient exceeds the representable range.
//
// See also method [RawMoney.MustDiv].
func (m RawMoney) Div(b RawMoney) (RawMoney, error) {
	r, err := m.div(b)
	if err != nil {
		return RawMoney{}, fmt.Errorf("computing [%v / %v]: %w", m, b, err)
	}
	return r, nil
}

func (m RawMoney) div(b RawMoney) (RawMoney, error) {
	if !m.SameCurr(b) {
		return RawMoney{}, ErrCurrencyMismatch
	}
	return m.divDecimal(b.value)
}

// DivDecimal returns the quotient of value m and the currency-agnostic
// decimal divisor e, computed to the full supported precision.
func (m RawMoney) DivDecimal(e decimal.Decimal) (RawMoney, error) {
	r, err := m.divDecimal(e)
	if err != nil {
		return RawMoney{}, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return r, nil
}

func (m RawMoney) divDecimal(e decimal.Decimal) (RawMoney, error) {
	if e.IsZero() {
		return RawMoney{}, ErrDivisionByZero
	}
	d, err := m.value.Quo(e)
	if err != nil {
		return RawMoney{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return NewRaw(m.curr, d), nil
}

// MustAdd is like [RawMoney.Add] but panics on any error.
func (m RawMoney) MustAdd(b RawMoney) RawMoney {
	r, err := m.Add(b)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%q, %q) failed: %v", m, b, err))
	}
	return r
}

// MustSub is like [RawMoney.Sub] but panics on any error.
func (m RawMoney) MustSub(b RawMoney) RawMoney {
	r, err := m.Sub(b)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%q, %q) failed: %v", m, b, err))
	}
	return r
}

// MustMul is like [RawMoney.Mul] but panics on any error.
func (m RawMoney) MustMul(b RawMoney) RawMoney {
	r, err := m.Mul(b)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%q, %q) failed: %v", m, b, err))
	}
	return r
}

// MustDiv is like [RawMoney.Div] but panics on any error, including
// division by zero.
func (m RawMoney) MustDiv(b RawMoney) RawMoney {
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
func (m RawMoney) Cmp(b RawMoney) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrCurrencyMismatch)
	}
	return m.value.Cmp(b.value), nil
}

// Equal returns true if both values are denominated in the same
// currency and are numerically equal.
func (m RawMoney) Equal(b RawMoney) bool {
	return m.SameCurr(b) && m.value.Cmp(b.value) == 0
}

// Min returns the smaller value.
//
// Min returns an error wrapping [ErrCurrencyMismatch] if the values are
// denominated in different currencies.
func (m RawMoney) Min(b RawMoney) (RawMoney, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return RawMoney{}, err
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
func (m RawMoney) Max(b RawMoney) (RawMoney, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return RawMoney{}, err
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
func (m RawMoney) Clamp(lo, hi RawMoney) (RawMoney, error) {
	switch c, err := lo.Cmp(hi); {
	case err != nil:
		return RawMoney{}, err
	case c > 0:
		return RawMoney{}, fmt.Errorf("clamping %v: invalid range", m)
	}
	switch c, err := m.Cmp(lo); {
	case err != nil:
		return RawMoney{}, err
	case c < 0:
		return lo, nil
	}
	switch c, err := m.Cmp(hi); {
	case err != nil:
		return RawMoney{}, err
	case c > 0:
		return hi, nil
	}
	return m, nil
}

// MinorUnits returns the amount as an integer count of the currency's
// minor units, rounding the amount to the currency's scale first.
//
// MinorUnits returns an error wrapping [ErrConversion] if the scaled
// amount cannot be represented as an int64.
func (m RawMoney) MinorUnits() (int64, error) {
	return minorUnits(m.curr, m.value)
}

// Round returns the value rounded to the currency's scale using the
// currency's rounding mode. Unlike [RawMoney.Finish], the result stays
// a RawMoney and is not padded.
func (m RawMoney) Round() RawMoney {
	return NewRaw(m.curr, m.curr.Rounding().Round(m.value, m.curr.Scale()))
}

// RoundWith returns the value rounded to the given number of digits
// after the decimal point using mode r.
func (m RawMoney) RoundWith(scale int, r Rounding) RawMoney {
	return NewRaw(m.curr, r.Round(m.value, scale))
}

// Finish rounds the accumulated amount to the currency's scale using
// the currency's rounding mode and converts the value to the
// auto-rounding [Money] flavor.
// See also method [Money.Raw].
func (m RawMoney) Finish() (Money, error) {
	r, err := newMoneySafe(m.curr, m.value)
	if err != nil {
		return Money{}, fmt.Errorf("finishing %v: %w", m, err)
	}
	return r, nil
}

// String implements the [fmt.Stringer] interface and returns the
// "<CODE> <amount>" form of the value, without digit grouping.
// The result is accepted by [ParseRaw].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RawMoney) String() string {
	return m.curr.Code() + " " + m.value.String()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRaw].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *RawMoney) UnmarshalText(text []byte) error {
	v, err := ParseRaw(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", RawMoney{}, err)
	}
	*m = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m RawMoney) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseRaw].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *RawMoney) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return m.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m RawMoney) MarshalJSON() ([]byte, error) {
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
func (m *RawMoney) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*m, err = ParseRaw(value)
	case []byte:
		*m, err = ParseRaw(string(value))
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, RawMoney{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (m RawMoney) Value() (driver.Value, error) {
	return m.String(), nil
}
