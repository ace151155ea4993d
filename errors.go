package money

import "errors"

// Errors reported by the checked API.
// Returned errors always carry operation context and wrap one of these
// sentinel values, so callers can classify failures with [errors.Is].
var (
	// ErrInvalidCurrency indicates a currency code that is not part of
	// ISO 4217 or is syntactically malformed.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrCurrencyExists indicates an attempt to define a custom currency
	// whose code is already assigned by ISO 4217.
	ErrCurrencyExists = errors.New("currency already defined by ISO 4217")

	// ErrCurrencyMismatch indicates an arithmetic or comparison operation
	// between values denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrParse indicates text that matches neither of the supported
	// money grammars.
	ErrParse = errors.New("invalid money string")

	// ErrOverflow indicates that a checked numeric operation exceeded the
	// representable range of the underlying decimal.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrConversion indicates a value that cannot be converted between
	// the decimal amount and an integer type.
	ErrConversion = errors.New("conversion failed")

	// ErrDivisionByZero indicates a division with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)
