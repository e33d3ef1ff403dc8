package fraction

import (
	"fmt"
	"math/big"
	"strings"
)

// IntegerToDecimal converts a quantity of smallest units, such as a raw
// token balance, to a human-readable decimal with the given number of
// decimals. Any fractional part of the input is discarded toward zero
// before the decimal point is moved, and trailing zeros are removed:
//
//	IntegerToDecimal("1500000", 6)   // "1.5"
//	IntegerToDecimal("1", 18)        // "0.000000000000000001"
//	IntegerToDecimal("-1999.9", 3)   // "-1.999"
//
// NaN and infinities are returned as "NaN", "Infinity" and "-Infinity".
// See also [Parse] for the accepted formats.
//
// IntegerToDecimal returns an error if:
//   - the string is not a valid decimal (wrapping [ErrParse]);
//   - decimals is negative or greater than 100000 (wrapping [ErrInvalidArgument]).
func IntegerToDecimal(integer string, decimals int) (string, error) {
	if decimals < 0 || decimals > maxExponent {
		return "", fmt.Errorf("converting %q to decimal: %v decimals: %w", integer, decimals, ErrInvalidArgument)
	}
	f, err := parseDecimal(integer)
	if err != nil {
		return "", fmt.Errorf("converting %q to decimal: %w", integer, err)
	}
	if f.isSpecial() {
		return f.special(), nil
	}
	num, den, neg := f.magnitude()
	return trimmed(num.Quo(num, den), -decimals, neg), nil
}

// DecimalToInteger is the inverse of [IntegerToDecimal]: it moves the
// decimal point of a human-readable decimal the given number of places to
// the right and discards the remaining fractional part toward zero:
//
//	DecimalToInteger("1.5", 6)        // "1500000"
//	DecimalToInteger("0.0000019", 6)  // "1"
//	DecimalToInteger("-1.9999999", 6) // "-1999999"
//
// NaN and infinities are returned as "NaN", "Infinity" and "-Infinity".
//
// DecimalToInteger returns an error if:
//   - the string is not a valid decimal (wrapping [ErrParse]);
//   - decimals is negative or greater than 100000 (wrapping [ErrInvalidArgument]).
func DecimalToInteger(dec string, decimals int) (string, error) {
	if decimals < 0 || decimals > maxExponent {
		return "", fmt.Errorf("converting %q to integer: %v decimals: %w", dec, decimals, ErrInvalidArgument)
	}
	f, err := parseDecimalShifted(dec, decimals)
	if err != nil {
		return "", fmt.Errorf("converting %q to integer: %w", dec, err)
	}
	if f.isSpecial() {
		return f.special(), nil
	}
	num, den, neg := f.magnitude()
	return trimmed(num.Quo(num, den), 0, neg), nil
}

// trimmed is like plain but removes trailing zeros after the decimal point
// and never renders a negative zero.
func trimmed(coef *big.Int, exp int, neg bool) string {
	if coef.Sign() == 0 {
		return "0"
	}
	s := plain(coef, exp, neg)
	if exp < 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
