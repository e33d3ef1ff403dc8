package fraction

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd"
)

// maxDigits limits the number of digits [Fraction.ToSignificant] and
// [Fraction.ToFixed] may be asked for.
const maxDigits = 100_000

// context returns an apd context with the given precision and the rounder
// matching r.
func (r Rounding) context(prec uint32) *apd.Context {
	ctx := apd.BaseContext.WithPrecision(prec)
	switch r {
	case RoundDown:
		ctx.Rounding = apd.RoundDown
	case RoundUp:
		ctx.Rounding = apd.RoundUp
	default:
		ctx.Rounding = apd.RoundHalfUp
	}
	return ctx
}

// magnitude returns |num|, |den| and the sign of the quotient.
func (f Fraction) magnitude() (num, den *big.Int, neg bool) {
	num = new(big.Int).Abs(f.n())
	den = new(big.Int).Abs(f.d())
	neg = f.n().Sign()*f.d().Sign() < 0
	return num, den, neg
}

// ToSignificant returns f rounded to the given number of significant digits,
// with trailing zeros removed and without exponent notation.
// The quotient is first computed with one extra digit of precision and then
// rounded to the requested number of digits, both times using the given
// rounding mode.
//
// NaN and infinities are rendered as "NaN", "Infinity" and "-Infinity".
//
// ToSignificant returns an error wrapping [ErrInvalidArgument] if digits
// is not positive, digits is greater than 100000 or the rounding mode is
// unknown.
func (f Fraction) ToSignificant(digits int, rounding Rounding) (string, error) {
	s, err := f.toSignificant(digits, rounding)
	if err != nil {
		return "", fmt.Errorf("formatting %v to %v significant digits: %w", f, digits, err)
	}
	return s, nil
}

func (f Fraction) toSignificant(digits int, rounding Rounding) (string, error) {
	if digits <= 0 {
		return "", fmt.Errorf("%v is not positive: %w", digits, ErrInvalidArgument)
	}
	if digits > maxDigits {
		return "", fmt.Errorf("%v is greater than %v: %w", digits, maxDigits, ErrInvalidArgument)
	}
	if !rounding.valid() {
		return "", fmt.Errorf("rounding %v: %w", rounding, ErrInvalidArgument)
	}
	if f.isSpecial() {
		return f.special(), nil
	}
	num, den, neg := f.magnitude()
	if num.Sign() == 0 {
		return "0", nil
	}

	// Quotient with digits+1 significant digits, scaled by 10^shift so that
	// apd only ever sees a zero exponent.
	shift := digits + 1 - (numDigits(num) - numDigits(den))
	coef, rem := scaledQuoRem(num, den, shift)
	if numDigits(coef) > digits+1 {
		shift--
		coef, rem = scaledQuoRem(num, den, shift)
	}
	if shift < 0 {
		den = new(big.Int).Mul(den, pow10(-shift))
	}
	rounding.adjust(coef, rem, den)

	q := new(apd.Decimal)
	q.Coeff.Set(coef)
	if _, err := rounding.context(uint32(digits)).Round(q, q); err != nil {
		return "", fmt.Errorf("rounding to %v digits: %v: %w", digits, err, ErrInvalidArgument)
	}

	// Trailing zeros
	coef, exp := new(big.Int).Set(&q.Coeff), int(q.Exponent)-shift
	m := new(big.Int)
	for coef.Sign() != 0 {
		t, r := new(big.Int).QuoRem(coef, bigTen, m)
		if r.Sign() != 0 {
			break
		}
		coef = t
		exp++
	}
	return plain(coef, exp, neg), nil
}

// scaledQuoRem returns the truncated quotient and the remainder of
// num * 10^shift / den, where a negative shift scales den instead.
func scaledQuoRem(num, den *big.Int, shift int) (q, r *big.Int) {
	if shift >= 0 {
		num = new(big.Int).Mul(num, pow10(shift))
	} else {
		den = new(big.Int).Mul(den, pow10(-shift))
	}
	return new(big.Int).QuoRem(num, den, new(big.Int))
}

// adjust moves the truncated quotient q of a division by den, which left
// the remainder rem, to the value required by r. Both q and den are positive.
func (r Rounding) adjust(q, rem, den *big.Int) {
	if rem.Sign() == 0 {
		return
	}
	switch r {
	case RoundUp:
		q.Add(q, bigOne)
	case RoundHalfUp:
		if new(big.Int).Lsh(rem, 1).Cmp(den) >= 0 {
			q.Add(q, bigOne)
		}
	}
}

// numDigits returns the number of decimal digits in |x|.
func numDigits(x *big.Int) int {
	return len(new(big.Int).Abs(x).Text(10))
}

// ToFixed returns f rounded to exactly the given number of digits after
// the decimal point using the given rounding mode.
// A value that rounds to zero is rendered without a minus sign.
//
// NaN and infinities are rendered as "NaN", "Infinity" and "-Infinity".
//
// ToFixed returns an error wrapping [ErrInvalidArgument] if places is
// negative, places is greater than 100000 or the rounding mode is unknown.
func (f Fraction) ToFixed(places int, rounding Rounding) (string, error) {
	s, err := f.toFixed(places, rounding)
	if err != nil {
		return "", fmt.Errorf("formatting %v to %v decimal places: %w", f, places, err)
	}
	return s, nil
}

func (f Fraction) toFixed(places int, rounding Rounding) (string, error) {
	if places < 0 {
		return "", fmt.Errorf("%v is negative: %w", places, ErrInvalidArgument)
	}
	if places > maxDigits {
		return "", fmt.Errorf("%v is greater than %v: %w", places, maxDigits, ErrInvalidArgument)
	}
	if !rounding.valid() {
		return "", fmt.Errorf("rounding %v: %w", rounding, ErrInvalidArgument)
	}
	if f.isSpecial() {
		return f.special(), nil
	}
	num, den, neg := f.magnitude()
	coef, rem := scaledQuoRem(num, den, places)
	rounding.adjust(coef, rem, den)
	if coef.Sign() == 0 {
		neg = false
	}
	return plain(coef, -places, neg), nil
}

// plain renders |coef| * 10^exp in positional notation.
// A negative exponent produces exactly -exp digits after the decimal point.
func plain(coef *big.Int, exp int, neg bool) string {
	digits := new(big.Int).Abs(coef).String()
	var buf strings.Builder
	if neg {
		buf.WriteByte('-')
	}
	switch {
	case exp >= 0:
		buf.WriteString(digits)
		if digits != "0" {
			buf.WriteString(strings.Repeat("0", exp))
		}
	case len(digits) > -exp:
		pos := len(digits) + exp
		buf.WriteString(digits[:pos])
		buf.WriteByte('.')
		buf.WriteString(digits[pos:])
	default:
		buf.WriteString("0.")
		buf.WriteString(strings.Repeat("0", -exp-len(digits)))
		buf.WriteString(digits)
	}
	return buf.String()
}

// NumberFormat describes how the integer part of a rendered number is
// grouped. The zero value leaves numbers untouched.
type NumberFormat struct {
	GroupSeparator string // inserted between digit groups, e.g. ","
	GroupSize      int    // digits per group, 3 if not positive
}

// Apply inserts group separators into the integer part of a number produced
// by one of the ToSignificant, ToFixed or ToExact methods.
// Special values and strings without leading digits are returned unchanged.
func (nf NumberFormat) Apply(s string) string {
	if nf.GroupSeparator == "" {
		return s
	}
	size := nf.GroupSize
	if size <= 0 {
		size = 3
	}
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || strings.Trim(whole, "0123456789") != "" {
		return sign + s
	}

	var buf strings.Builder
	buf.WriteString(sign)
	first := len(whole) % size
	if first == 0 {
		first = size
	}
	buf.WriteString(whole[:first])
	for i := first; i < len(whole); i += size {
		buf.WriteString(nf.GroupSeparator)
		buf.WriteString(whole[i : i+size])
	}
	if hasFrac {
		buf.WriteByte('.')
		buf.WriteString(frac)
	}
	return buf.String()
}
