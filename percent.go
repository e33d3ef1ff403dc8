package fraction

import (
	"fmt"
)

var oneHundred = NewFromInt(bigHundred)

// Percent type represents a ratio that is rendered in percentage units.
// The stored value is the plain ratio, so 12.5% is kept as 125/1000 and
// multiplying an amount by it gives one eighth of the amount.
// Its zero value corresponds to 0%.
//
// Arithmetic on percents returns percents, so the type survives chained
// operations.
type Percent struct {
	value Fraction
}

func newPercentUnsafe(f Fraction) Percent {
	return Percent{value: f}
}

// NewPercent returns a percent equal to the ratio num / den,
// so NewPercent(1, 4) is 25%.
func NewPercent(num, den int64) Percent {
	return newPercentUnsafe(New(num, den))
}

// NewPercentFromFraction returns a percent with the same ratio as r.
func NewPercentFromFraction(r Rational) Percent {
	return newPercentUnsafe(r.Fraction())
}

// ParsePercent converts a decimal string in percentage units to a percent.
// For example, "12.5" gives 12.5%, stored as 125/1000.
// The special values "NaN", "Infinity" and "-Infinity" are accepted.
// See also constructor [Parse].
func ParsePercent(s string) (Percent, error) {
	f, err := parseDecimal(s)
	if err != nil {
		return Percent{}, fmt.Errorf("parsing percent: %w", err)
	}
	return newPercentUnsafe(f.Quo(oneHundred)), nil
}

// MustParsePercent is like [ParsePercent] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding percents.
func MustParsePercent(s string) Percent {
	p, err := ParsePercent(s)
	if err != nil {
		panic(fmt.Sprintf("ParsePercent(%q) failed: %v", s, err))
	}
	return p
}

// Fraction implements the [Rational] interface and returns the ratio without
// the percentage scaling.
func (p Percent) Fraction() Fraction {
	return p.value
}

// Add returns the sum p + r as a percent.
// See also method [Fraction.Add].
func (p Percent) Add(r Rational) Percent {
	return newPercentUnsafe(p.value.Add(r))
}

// Sub returns the difference p - r as a percent.
// See also method [Fraction.Sub].
func (p Percent) Sub(r Rational) Percent {
	return newPercentUnsafe(p.value.Sub(r))
}

// Mul returns the product p * r as a percent.
// See also method [Fraction.Mul].
func (p Percent) Mul(r Rational) Percent {
	return newPercentUnsafe(p.value.Mul(r))
}

// Quo returns the quotient p / r as a percent.
// See also method [Fraction.Quo].
func (p Percent) Quo(r Rational) Percent {
	return newPercentUnsafe(p.value.Quo(r))
}

// Less returns true if p < r.
func (p Percent) Less(r Rational) bool {
	return p.value.Less(r)
}

// Equal returns true if p = r.
func (p Percent) Equal(r Rational) bool {
	return p.value.Equal(r)
}

// Greater returns true if p > r.
func (p Percent) Greater(r Rational) bool {
	return p.value.Greater(r)
}

// ToSignificant returns the percentage (the ratio multiplied by 100) rounded
// to the given number of significant digits.
// See also method [Fraction.ToSignificant].
func (p Percent) ToSignificant(digits int, rounding Rounding) (string, error) {
	return p.value.Mul(oneHundred).ToSignificant(digits, rounding)
}

// ToFixed returns the percentage (the ratio multiplied by 100) rounded to
// the given number of digits after the decimal point.
// See also method [Fraction.ToFixed].
func (p Percent) ToFixed(places int, rounding Rounding) (string, error) {
	return p.value.Mul(oneHundred).ToFixed(places, rounding)
}

// LimitDecimals returns a percent whose percentage has at most the given
// number of digits after the decimal point.
// Unlike [Percent.ToFixed], the precision is lost in the result itself:
// LimitDecimals(1, RoundDown) turns 12.3456% into exactly 12.3%.
func (p Percent) LimitDecimals(places int, rounding Rounding) (Percent, error) {
	s, err := p.ToFixed(places, rounding)
	if err != nil {
		return Percent{}, fmt.Errorf("limiting %v to %v decimal places: %w", p, places, err)
	}
	return ParsePercent(s)
}

// String implements the [fmt.Stringer] interface and returns the percentage
// rounded half up to 5 significant digits followed by a percent sign.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Percent) String() string {
	s, err := p.ToSignificant(5, RoundHalfUp)
	if err != nil {
		return p.value.String()
	}
	return s + "%"
}
