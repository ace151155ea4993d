package money

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Presentation defaults applied when the ISO table or a custom
// constructor does not specify otherwise.
const (
	defaultThousandSeparator = ","
	defaultDecimalSeparator  = "."
	defaultMinorSymbol       = "minor"
)

// Currency describes a currency: its identity as defined by [ISO 4217]
// (alphabetic code, numeric code, name, symbol, minor-unit scale) and
// its presentation state (thousands and decimal separators, minor-unit
// symbol, active rounding mode).
//
// Currency is an immutable value type: the With* methods derive a new
// descriptor with one presentation field replaced and never modify the
// receiver. This makes any Currency safe for concurrent use by multiple
// goroutines.
//
// Two descriptors denote the same currency if and only if their
// alphabetic codes are equal; presentation state never participates in
// identity. Use [Currency.Equal] and [Currency.Cmp] for comparisons.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency struct {
	code        string
	num         string
	name        string
	symbol      string
	minorSymbol string
	scale       int
	thousandSep string
	decimalSep  string
	rounding    Rounding
	countries   []string
}

func newCurrencyFromInfo(inf *currencyInfo) Currency {
	c := Currency{
		code:        inf.code,
		num:         inf.num,
		name:        inf.name,
		symbol:      inf.symbol,
		minorSymbol: inf.minorSymbol,
		scale:       inf.scale,
		thousandSep: inf.thousandSep,
		decimalSep:  inf.decimalSep,
		countries:   inf.countries,
	}
	if c.minorSymbol == "" {
		c.minorSymbol = defaultMinorSymbol
	}
	if c.thousandSep == "" {
		c.thousandSep = defaultThousandSeparator
	}
	if c.decimalSep == "" {
		c.decimalSep = defaultDecimalSeparator
	}
	return c
}

// ParseCurr converts a string to a currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns an error wrapping [ErrInvalidCurrency] if the string
// does not represent a currency known to the package.
func ParseCurr(curr string) (Currency, error) {
	inf, ok := currLookup[curr]
	if !ok {
		inf, ok = currLookup[strings.ToUpper(curr)]
	}
	if !ok {
		return Currency{}, fmt.Errorf("parsing currency %q: %w", curr, ErrInvalidCurrency)
	}
	return newCurrencyFromInfo(inf), nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be
// parsed. It simplifies safe initialization of global variables holding
// currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// NewCurrency returns a currency that is not part of ISO 4217.
// The code, symbol and name must be non-empty and the scale must not be
// negative. The numeric code, countries and presentation state can be
// set afterwards with the With* methods.
//
// NewCurrency returns an error wrapping [ErrCurrencyExists] if the code
// is already assigned by ISO 4217; use [ParseCurr] for those currencies.
func NewCurrency(code, symbol, name string, scale int) (Currency, error) {
	if code == "" || symbol == "" || name == "" {
		return Currency{}, fmt.Errorf("creating currency: code, symbol and name must be non-empty: %w", ErrInvalidCurrency)
	}
	if scale < 0 {
		return Currency{}, fmt.Errorf("creating currency %q: negative scale: %w", code, ErrInvalidCurrency)
	}
	if _, ok := currLookup[strings.ToUpper(code)]; ok {
		return Currency{}, fmt.Errorf("creating currency %q: %w", code, ErrCurrencyExists)
	}
	return Currency{
		code:        code,
		symbol:      symbol,
		name:        name,
		scale:       scale,
		minorSymbol: defaultMinorSymbol,
		thousandSep: defaultThousandSeparator,
		decimalSep:  defaultDecimalSeparator,
	}, nil
}

// Code returns the 3-letter alphabetic code of the currency.
func (c Currency) Code() string {
	return c.code
}

// Num returns the 3-digit numeric code assigned by ISO 4217, or an
// empty string for custom currencies without one.
func (c Currency) Num() string {
	return c.num
}

// Name returns the full name of the currency.
func (c Currency) Name() string {
	return c.name
}

// Symbol returns the currency symbol, for example "$" for USD.
func (c Currency) Symbol() string {
	return c.symbol
}

// MinorSymbol returns the symbol of the currency's smallest unit, for
// example "¢" for USD. Currencies without a known minor-unit symbol
// report "minor".
func (c Currency) MinorSymbol() string {
	return c.minorSymbol
}

// Scale returns the number of digits after the decimal point required
// for representing the minor unit of the currency:
//   - 0 for currencies without minor units, such as the Japanese yen;
//   - 2 for currencies like the US dollar, whose minor unit, 1 cent,
//     is 0.01 dollars;
//   - 3 for currencies like the Bahraini dinar, whose minor unit,
//     1 fils, is 0.001 dinars.
func (c Currency) Scale() int {
	return c.scale
}

// ThousandSeparator returns the separator grouping the integer digits
// of a formatted amount.
func (c Currency) ThousandSeparator() string {
	if c.thousandSep == "" {
		return defaultThousandSeparator
	}
	return c.thousandSep
}

// DecimalSeparator returns the separator between the integer and
// fractional digits of a formatted amount.
func (c Currency) DecimalSeparator() string {
	if c.decimalSep == "" {
		return defaultDecimalSeparator
	}
	return c.decimalSep
}

// Rounding returns the rounding mode applied by the auto-rounding
// [Money] flavor. The default is [BankersRounding].
func (c Currency) Rounding() Rounding {
	return c.rounding
}

// Countries returns the countries the currency is used by, if known.
func (c Currency) Countries() []string {
	return append([]string(nil), c.countries...)
}

// WithThousandSeparator returns a copy of the currency with the given
// thousands separator.
func (c Currency) WithThousandSeparator(sep string) Currency {
	c.thousandSep = sep
	return c
}

// WithDecimalSeparator returns a copy of the currency with the given
// decimal separator.
func (c Currency) WithDecimalSeparator(sep string) Currency {
	c.decimalSep = sep
	return c
}

// WithMinorSymbol returns a copy of the currency with the given
// minor-unit symbol.
func (c Currency) WithMinorSymbol(symbol string) Currency {
	c.minorSymbol = symbol
	return c
}

// WithNum returns a copy of the currency with the given numeric code.
// It is intended for custom currencies created with [NewCurrency].
func (c Currency) WithNum(num string) Currency {
	c.num = num
	return c
}

// WithCountries returns a copy of the currency with the given list of
// countries the currency is used by.
func (c Currency) WithCountries(countries ...string) Currency {
	c.countries = append([]string(nil), countries...)
	return c
}

// WithRounding returns a copy of the currency with the given rounding
// mode, used by the auto-rounding [Money] flavor.
func (c Currency) WithRounding(r Rounding) Currency {
	c.rounding = r
	return c
}

// Equal returns true if both descriptors denote the same currency.
// Identity is defined solely by the alphabetic code; presentation state
// is ignored.
func (c Currency) Equal(other Currency) bool {
	return c.code == other.code
}

// Cmp compares the currencies by alphabetic code and returns:
//
//	-1 if c < other
//	 0 if c = other
//	+1 if c > other
func (c Currency) Cmp(other Currency) int {
	return strings.Compare(c.code, other.code)
}

// String implements the [fmt.Stringer] interface and returns the
// 3-letter code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(c.code)+2)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T", Currency{}, NullCurrency{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Currency{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// NullCurrency represents a currency that can be null.
// Its zero value is null.
// NullCurrency is not thread-safe.
type NullCurrency struct {
	Currency Currency
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Currency.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullCurrency) Scan(value any) error {
	if value == nil {
		n.Currency = Currency{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Currency.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}
