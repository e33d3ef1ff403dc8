package fraction

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd"
	"github.com/govalues/decimal"
)

// maxExponent limits the exponent accepted by [Parse], so that a short
// string cannot request an arbitrarily large power of ten.
const maxExponent = 100_000

// pow10 returns 10^n for n >= 0.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// Parse converts a decimal string to an exact fraction.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.0001234
//	1.83e5
//	.5
//	NaN
//	Infinity
//	-Infinity
//
// The denominator of the result is 10 raised to the number of digits after
// the decimal point (adjusted by the exponent), with no reduction:
// "1.50" gives 150/100.
//
// Parse returns an error wrapping [ErrParse] if the string is not a valid
// decimal.
func Parse(s string) (Fraction, error) {
	f, err := parseDecimal(s)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing fraction: %w", err)
	}
	return f, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding fractions.
func MustParse(s string) Fraction {
	f, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return f
}

func parseDecimal(s string) (Fraction, error) {
	return parseDecimalShifted(s, 0)
}

// decimalChars lists the bytes a finite decimal string may contain.
const decimalChars = "0123456789.eE+-"

// parseDecimalShifted parses s and moves its decimal point shift places to
// the right, so ("1.5", 6) gives 1500000/1.
func parseDecimalShifted(s string, shift int) (Fraction, error) {
	switch s {
	case "NaN":
		return NaN(), nil
	case "Infinity", "+Infinity":
		return Inf(1), nil
	case "-Infinity":
		return Inf(-1), nil
	}

	// apd also accepts "inf", "nan", "sNaN" and similar spellings.
	if s == "" || strings.Trim(s, decimalChars) != "" {
		return Fraction{}, fmt.Errorf("invalid decimal %q: %w", s, ErrParse)
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Fraction{}, fmt.Errorf("invalid decimal %q: %v: %w", s, err, ErrParse)
	}
	if d.Form != apd.Finite || d.Coeff.Sign() < 0 {
		return Fraction{}, fmt.Errorf("invalid decimal %q: %w", s, ErrParse)
	}
	if d.Exponent > maxExponent || d.Exponent < -maxExponent {
		return Fraction{}, fmt.Errorf("exponent of %q out of range: %w", s, ErrParse)
	}

	num := new(big.Int).Set(&d.Coeff)
	if d.Negative {
		num.Neg(num)
	}

	// Scale
	den := big.NewInt(1)
	switch scale := -int(d.Exponent) - shift; {
	case scale > 0:
		den = pow10(scale)
	case scale < 0:
		num.Mul(num, pow10(-scale))
	}
	return newFractionUnsafe(num, den), nil
}

// parseRatio converts a string in the "num/den" format to a fraction.
func parseRatio(s string) (Fraction, error) {
	ns, ds, ok := strings.Cut(s, "/")
	if !ok {
		return Fraction{}, fmt.Errorf("missing '/' in %q: %w", s, ErrParse)
	}
	num, ok := new(big.Int).SetString(strings.TrimSpace(ns), 10)
	if !ok {
		return Fraction{}, fmt.Errorf("invalid numerator in %q: %w", s, ErrParse)
	}
	den, ok := new(big.Int).SetString(strings.TrimSpace(ds), 10)
	if !ok {
		return Fraction{}, fmt.Errorf("invalid denominator in %q: %w", s, ErrParse)
	}
	return newFractionUnsafe(num, den), nil
}

// Coerce converts a scalar to a fraction. The following types are supported:
//
//   - any [Rational], returned as is;
//   - *big.Int and all built-in integer types, as x / 1;
//   - [decimal.Decimal], as coef / 10^scale;
//   - strings accepted by [Parse], as well as "num/den" strings.
//
// Coerce returns an error wrapping [ErrParse] for any other value.
func Coerce(v any) (Fraction, error) {
	switch v := v.(type) {
	case Rational:
		return v.Fraction(), nil
	case *big.Int:
		if v == nil {
			break
		}
		return NewFromInt(v), nil
	case int:
		return New(int64(v), 1), nil
	case int8:
		return New(int64(v), 1), nil
	case int16:
		return New(int64(v), 1), nil
	case int32:
		return New(int64(v), 1), nil
	case int64:
		return New(v, 1), nil
	case uint:
		return NewFromInt(new(big.Int).SetUint64(uint64(v))), nil
	case uint8:
		return New(int64(v), 1), nil
	case uint16:
		return New(int64(v), 1), nil
	case uint32:
		return New(int64(v), 1), nil
	case uint64:
		return NewFromInt(new(big.Int).SetUint64(v)), nil
	case decimal.Decimal:
		return NewFromDecimal(v), nil
	case string:
		s := strings.TrimSpace(v)
		if strings.Contains(s, "/") {
			f, err := parseRatio(s)
			if err != nil {
				return Fraction{}, fmt.Errorf("converting string: %w", err)
			}
			return f, nil
		}
		f, err := parseDecimal(s)
		if err != nil {
			return Fraction{}, fmt.Errorf("converting string: %w", err)
		}
		return f, nil
	}
	return Fraction{}, fmt.Errorf("converting %T: %w", v, ErrParse)
}

// NewFromDecimal returns a fraction exactly equal to the decimal d,
// that is coef / 10^scale.
// See also method [Fraction.Decimal].
func NewFromDecimal(d decimal.Decimal) Fraction {
	return newFromDecimalShifted(d, 0)
}

// newFromDecimalShifted is the decimal counterpart of parseDecimalShifted.
func newFromDecimalShifted(d decimal.Decimal, shift int) Fraction {
	num := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		num.Neg(num)
	}
	den := big.NewInt(1)
	switch scale := d.Scale() - shift; {
	case scale > 0:
		den = pow10(scale)
	case scale < 0:
		num.Mul(num, pow10(-scale))
	}
	return newFractionUnsafe(num, den)
}

// Decimal returns f rounded to the given number of digits after the decimal
// point as a [decimal.Decimal].
// See also constructor [NewFromDecimal].
//
// Decimal returns an error if:
//   - f is NaN or an infinity;
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the result does not fit into a decimal.
func (f Fraction) Decimal(scale int, rounding Rounding) (decimal.Decimal, error) {
	if f.isSpecial() {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: special value: %w", f, ErrInvalidArgument)
	}
	if scale < 0 || scale > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: scale %v out of range: %w", f, scale, ErrInvalidArgument)
	}
	s, err := f.ToFixed(scale, rounding)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", f, err)
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %v: %w", f, err, ErrInvalidArgument)
	}
	return d, nil
}
