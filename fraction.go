package fraction

import (
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Rational is implemented by every type of this package that holds an exact
// fraction: [Fraction], [Percent] and [Amount].
// All arithmetic and comparison methods accept a Rational, so a percent can be
// added to a fraction or an amount can be divided by a percent.
type Rational interface {
	// Fraction returns the underlying fraction.
	Fraction() Fraction
}

var (
	bigZero    = big.NewInt(0)
	bigOne     = big.NewInt(1)
	bigTen     = big.NewInt(10)
	bigHundred = big.NewInt(100)
)

// Fraction type represents an exact quotient of two arbitrary-precision
// integers. Its zero value corresponds to 0/1.
//
// A zero denominator encodes one of three special values:
//
//	 0/0 is NaN
//	+1/0 is +Infinity
//	-1/0 is -Infinity
//
// Fractions are never reduced, so the numerator and denominator grow with
// every operation. The denominator may become negative after multiplying or
// dividing by a negative value; comparisons take that into account.
//
// Fraction is immutable: its integers are never modified after construction,
// which makes it safe for concurrent use by multiple goroutines.
type Fraction struct {
	num *big.Int
	den *big.Int
}

// newFractionUnsafe takes ownership of num and den and applies the
// normalization rules:
//
//	n/0 becomes sign(n)/0 for n != 0
//	0/d becomes 0/1       for d != 0
//
// Use it only with integers nobody else holds a reference to.
func newFractionUnsafe(num, den *big.Int) Fraction {
	switch {
	case den.Sign() == 0 && num.Sign() != 0:
		num = big.NewInt(int64(num.Sign()))
	case num.Sign() == 0 && den.Sign() != 0:
		den = big.NewInt(1)
	}
	return Fraction{num: num, den: den}
}

// New returns a fraction equal to num / den.
// A zero denominator produces NaN or a signed infinity, see [Fraction].
func New(num, den int64) Fraction {
	return newFractionUnsafe(big.NewInt(num), big.NewInt(den))
}

// NewFromInt returns a fraction equal to x / 1.
// A nil x is treated as 0.
func NewFromInt(x *big.Int) Fraction {
	return NewFromBigInt(x, bigOne)
}

// NewFromBigInt returns a fraction equal to num / den.
// The arguments are copied, so the caller may keep modifying them.
// A nil numerator is treated as 0 and a nil denominator as 1.
func NewFromBigInt(num, den *big.Int) Fraction {
	n, d := new(big.Int), big.NewInt(1)
	if num != nil {
		n.Set(num)
	}
	if den != nil {
		d.Set(den)
	}
	return newFractionUnsafe(n, d)
}

// NaN returns the fraction 0/0.
func NaN() Fraction {
	return Fraction{num: big.NewInt(0), den: big.NewInt(0)}
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Fraction {
	if sign < 0 {
		return Fraction{num: big.NewInt(-1), den: big.NewInt(0)}
	}
	return Fraction{num: big.NewInt(1), den: big.NewInt(0)}
}

func (f Fraction) n() *big.Int {
	if f.num == nil {
		return bigZero
	}
	return f.num
}

func (f Fraction) d() *big.Int {
	if f.den == nil {
		return bigOne
	}
	return f.den
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int {
	return new(big.Int).Set(f.n())
}

// Denom returns a copy of the denominator.
func (f Fraction) Denom() *big.Int {
	return new(big.Int).Set(f.d())
}

// Fraction implements the [Rational] interface.
// Since fractions are immutable, the result may share integers with f.
func (f Fraction) Fraction() Fraction {
	return f
}

// IsNaN returns true if f is 0/0.
func (f Fraction) IsNaN() bool {
	return f.n().Sign() == 0 && f.d().Sign() == 0
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f Fraction) IsInf(sign int) bool {
	if f.d().Sign() != 0 {
		return false
	}
	s := f.n().Sign()
	return (sign >= 0 && s > 0) || (sign <= 0 && s < 0)
}

// isSpecial returns true if the denominator is zero.
func (f Fraction) isSpecial() bool {
	return f.d().Sign() == 0
}

// IsZero returns:
//
//	true  if f = 0
//	false otherwise
func (f Fraction) IsZero() bool {
	return f.n().Sign() == 0 && f.d().Sign() != 0
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f = 0 or f is NaN
//	+1 if f > 0
func (f Fraction) Sign() int {
	s := f.n().Sign()
	if f.d().Sign() < 0 {
		s = -s
	}
	return s
}

// Neg returns a fraction with the opposite sign.
func (f Fraction) Neg() Fraction {
	return newFractionUnsafe(new(big.Int).Neg(f.n()), f.d())
}

// Inv returns the reciprocal den / num.
// Infinities become zero and zero becomes positive infinity; NaN stays NaN.
func (f Fraction) Inv() Fraction {
	return newFractionUnsafe(f.d(), f.n())
}

// Quotient returns the integer part of f, rounded toward negative infinity.
// Quotient returns false if f is NaN or an infinity.
// See also method [Fraction.Remainder].
func (f Fraction) Quotient() (q *big.Int, ok bool) {
	q, _, ok = f.quoRem()
	return q, ok
}

// Remainder returns the fraction left after floor division, that is
// (num mod den) / den, with the sign of the denominator.
// Remainder returns false if f is NaN or an infinity.
// See also method [Fraction.Quotient].
func (f Fraction) Remainder() (r Fraction, ok bool) {
	_, m, ok := f.quoRem()
	if !ok {
		return Fraction{}, false
	}
	return newFractionUnsafe(m, f.d()), true
}

func (f Fraction) quoRem() (q, m *big.Int, ok bool) {
	num, den := f.n(), f.d()
	if den.Sign() == 0 {
		return nil, nil, false
	}
	q, m = new(big.Int).QuoRem(num, den, new(big.Int))
	// Floor division
	if m.Sign() != 0 && m.Sign() != den.Sign() {
		q.Sub(q, bigOne)
		m.Add(m, den)
	}
	return q, m, true
}

// Add returns the sum f + r.
// If either operand is NaN, the result is NaN.
func (f Fraction) Add(r Rational) Fraction {
	g := r.Fraction()
	if f.IsNaN() || g.IsNaN() {
		return NaN()
	}
	a, b, c, d := f.n(), f.d(), g.n(), g.d()
	if b.Cmp(d) == 0 {
		return newFractionUnsafe(new(big.Int).Add(a, c), b)
	}
	num := new(big.Int).Mul(a, d)
	num.Add(num, new(big.Int).Mul(c, b))
	return newFractionUnsafe(num, new(big.Int).Mul(b, d))
}

// Sub returns the difference f - r.
// If either operand is NaN, the result is NaN.
func (f Fraction) Sub(r Rational) Fraction {
	g := r.Fraction()
	if f.IsNaN() || g.IsNaN() {
		return NaN()
	}
	a, b, c, d := f.n(), f.d(), g.n(), g.d()
	if b.Cmp(d) == 0 {
		return newFractionUnsafe(new(big.Int).Sub(a, c), b)
	}
	num := new(big.Int).Mul(a, d)
	num.Sub(num, new(big.Int).Mul(c, b))
	return newFractionUnsafe(num, new(big.Int).Mul(b, d))
}

// Mul returns the product f * r.
//
// Special values are not treated separately, the result follows from
// (a/b)*(c/d) = (a*c)/(b*d). An infinity multiplied by a non-zero value is
// an infinity, while an infinity multiplied by zero is 0/0, that is NaN.
func (f Fraction) Mul(r Rational) Fraction {
	g := r.Fraction()
	num := new(big.Int).Mul(f.n(), g.n())
	den := new(big.Int).Mul(f.d(), g.d())
	return newFractionUnsafe(num, den)
}

// Quo returns the quotient f / r.
// Division by zero does not fail: it gives a signed infinity, or NaN if f is
// also zero.
func (f Fraction) Quo(r Rational) Fraction {
	g := r.Fraction()
	num := new(big.Int).Mul(f.n(), g.d())
	den := new(big.Int).Mul(f.d(), g.n())
	return newFractionUnsafe(num, den)
}

// Less returns true if f < r.
// Any comparison involving NaN returns false.
func (f Fraction) Less(r Rational) bool {
	diff := f.Sub(r)
	n, d := diff.n().Sign(), diff.d().Sign()
	return (n < 0 && d >= 0) || (n > 0 && d < 0)
}

// Greater returns true if f > r.
// Any comparison involving NaN returns false.
func (f Fraction) Greater(r Rational) bool {
	diff := f.Sub(r)
	n, d := diff.n().Sign(), diff.d().Sign()
	return (n > 0 && d >= 0) || (n < 0 && d < 0)
}

// Equal returns true if f = r.
//
// When both operands have a zero denominator their numerators are compared
// directly, so infinities of the same sign are equal and NaN is equal to NaN.
// NaN is never equal to a finite value or an infinity.
func (f Fraction) Equal(r Rational) bool {
	g := r.Fraction()
	if f.isSpecial() && g.isSpecial() {
		return f.n().Cmp(g.n()) == 0
	}
	diff := f.Sub(g)
	return diff.n().Sign() == 0 && diff.d().Sign() != 0
}

// special returns the text representation of a zero-denominator fraction.
func (f Fraction) special() string {
	switch f.n().Sign() {
	case 1:
		return "Infinity"
	case -1:
		return "-Infinity"
	}
	return "NaN"
}

// String implements the [fmt.Stringer] interface and returns the fraction
// as "num/den", or one of "NaN", "Infinity", "-Infinity".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	if f.isSpecial() {
		return f.special()
	}
	return f.n().String() + "/" + f.d().String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example  | Description                       |
//	| ------ | -------- | --------------------------------- |
//	| %s, %v | 5/4      | Numerator and denominator         |
//	| %q     | "5/4"    | Quoted numerator and denominator  |
//	| %f     | 1.250000 | Decimal, rounded half up          |
//
// The precision of %f defaults to 6 digits after the decimal point.
// The '-' flag and the width are supported by all verbs,
// the '+' flag only by %f.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (f Fraction) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = f.String()
	case 'q', 'Q':
		s = `"` + f.String() + `"`
	case 'f', 'F':
		prec, ok := state.Precision()
		if !ok {
			prec = 6
		}
		var err error
		s, err = f.ToFixed(prec, RoundHalfUp)
		if err != nil {
			s = f.String()
		}
		if state.Flag('+') && !strings.HasPrefix(s, "-") && !f.IsNaN() {
			s = "+" + s
		}
	default:
		//nolint:errcheck
		fmt.Fprintf(state, "%%!%c(fraction.Fraction=%s)", verb, f.String())
		return
	}
	writePadded(state, s)
}

// writePadded writes s to state, padded with spaces up to the width of
// the verb. The '-' flag moves the padding to the right.
func writePadded(state fmt.State, s string) {
	w, ok := state.Width()
	if !ok || w <= len(s) {
		//nolint:errcheck
		io.WriteString(state, s)
		return
	}
	pad := strings.Repeat(" ", w-len(s))
	if state.Flag('-') {
		s += pad
	} else {
		s = pad + s
	}
	//nolint:errcheck
	io.WriteString(state, s)
}
