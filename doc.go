/*
Package fraction implements exact rational arithmetic for token quantities,
prices and percentages.
It represents every value as a pair of [math/big] integers, so no operation
ever rounds, and only rounding happens when a value is rendered as text.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - NaN and signed infinities encoded as fractions with a zero denominator
  - Arithmetic and comparison operations that never fail
  - Rendering to significant digits or fixed decimal places with three
    rounding modes
  - Percentages and asset amounts that keep their type across operations
  - Integer square root of arbitrary-precision integers

# Representation

A [Fraction] is a numerator and a denominator. Fractions are normalized only
in two ways:

	n/0 becomes sign(n)/0 for n != 0
	0/d becomes 0/1       for d != 0

There is no reduction by the greatest common divisor, so 2/4 stays 2/4,
and the denominator may be negative after multiplying by a negative value.
The three fractions with a zero denominator are special values:

	 0/0 is NaN
	+1/0 is +Infinity
	-1/0 is -Infinity

A [Percent] wraps a fraction and renders it multiplied by 100.
An [Amount] wraps a fraction holding a raw quantity of an [Asset], counted
in its smallest units, and renders it divided by 10^decimals.
[Token] is a table of well-known assets that implements [Asset].
[IntegerToDecimal] and [DecimalToInteger] convert between raw and
human-readable quantity strings without building an amount.

# Special values

Addition and subtraction involving NaN always produce NaN.
Multiplication and division follow from the cross-multiplication formulas
without any special cases, so dividing a non-zero value by zero produces
a signed infinity, dividing a value by an infinity produces zero, and
dividing zero by zero produces NaN.
Comparisons involving NaN are always false, except that [Fraction.Equal]
compares two special values by their numerators, so NaN equals NaN.

# Rounding

The [Rounding] modes are [RoundDown] (toward zero), [RoundHalfUp]
(to nearest, ties away from zero) and [RoundUp] (away from zero).
Significant-digit rounding is performed by the [apd] package.

# Errors

Arithmetic never fails. Errors are returned when parsing strings
([ErrParse]), when formatting parameters are out of range
([ErrInvalidArgument]), and when adding or subtracting amounts of
different assets ([ErrCurrencyMismatch]).
Every error wraps one of these sentinels, so they can be checked with
[errors.Is].

[apd]: https://pkg.go.dev/github.com/cockroachdb/apd
*/
package fraction
