/*
Package money implements immutable monetary amounts with fixed-precision
decimal arithmetic.

# Features

  - Two flavors of the same amount: [Money] rounds every constructor and
    arithmetic result to the currency's scale, whereas [RawMoney] keeps
    intermediate results at full precision until [RawMoney.Finish] is
    called.
  - Optimized performance: [Money] and [RawMoney] are thin wrappers
    around [decimal.Decimal], so no heap allocations occur during
    arithmetic.
  - Correctness: arithmetic is checked and reports overflow through
    errors instead of silently wrapping or losing precision.
  - Locale-aware parsing and formatting: grouped amounts in the
    comma-thousands and dot-thousands grammars, symbol-prefixed inputs,
    and a small template language for rendering.

# Representation

A monetary value is a currency descriptor paired with a decimal amount.
[Currency] carries the ISO 4217 identity (code, numeric code, name,
symbol, scale) together with presentation state: the thousands and
decimal separators, the minor-unit symbol, and the rounding mode applied
by the [Money] flavor. Descriptors are immutable; the With* methods
derive new descriptors and identity is defined solely by code.

The amount is a [decimal.Decimal], a 10^19 precision floating-point
decimal. [Money] amounts always carry exactly [Currency.Scale] digits
after the decimal point.

# Operations

Arithmetic between two monetary values requires both operands to share a
currency; mixing currencies yields an error wrapping
[ErrCurrencyMismatch]. The *Decimal variants accept a currency-agnostic
decimal operand, for multiplying by quantities or rates. Every checked
operation has a Must* twin that panics instead of returning an error,
for call sites that have already established the invariants.

# Rounding

Five rounding modes are available: [BankersRounding] (the default),
[HalfUp], [HalfDown], [Ceil], and [Floor]. The mode is part of the
currency's presentation state, so a single descriptor fixes the rounding
policy for every operation on values denominated in it.

# Errors

All failures wrap one of the package sentinels — [ErrInvalidCurrency],
[ErrCurrencyMismatch], [ErrParse], [ErrOverflow], [ErrConversion],
[ErrDivisionByZero], [ErrCurrencyExists] — so callers can classify them
with [errors.Is]. Formatting never fails.

[decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
[errors.Is]: https://pkg.go.dev/errors#Is
*/
package money
