package fraction

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

// Amount type represents a quantity of an asset.
// It keeps the raw quantity, expressed in the smallest unit of the asset
// (for example wei for ether), as an exact fraction, and uses the number of
// decimals of the asset only for rendering.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown asset.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	asset Asset    // nil means XXX
	value Fraction // raw quantity
}

// newAmountUnsafe creates a new amount from a raw fraction.
func newAmountUnsafe(a Asset, f Fraction) Amount {
	return Amount{asset: a, value: f}
}

// NewAmountFromRaw returns an amount of raw / 1 smallest units of the asset.
// For example, NewAmountFromRaw(USDC, big.NewInt(1500000)) is 1.5 USDC.
func NewAmountFromRaw(a Asset, raw *big.Int) Amount {
	return newAmountUnsafe(a, NewFromInt(raw))
}

// ParseAmountRaw is like [NewAmountFromRaw] but takes the raw quantity as
// a base-10 integer string. The special values "NaN", "Infinity" and
// "-Infinity" are also accepted.
//
// ParseAmountRaw returns an error wrapping [ErrParse] if the string is not
// an integer or a special value.
func ParseAmountRaw(a Asset, raw string) (Amount, error) {
	switch raw {
	case "NaN", "Infinity", "-Infinity":
		f, err := parseDecimal(raw)
		if err != nil {
			return Amount{}, fmt.Errorf("parsing raw amount: %w", err)
		}
		return newAmountUnsafe(a, f), nil
	}
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return Amount{}, fmt.Errorf("parsing raw amount %q: %w", raw, ErrParse)
	}
	return newAmountUnsafe(a, newFractionUnsafe(n, big.NewInt(1))), nil
}

// NewAmountFromFraction returns an amount of num / den smallest units of the asset.
func NewAmountFromFraction(a Asset, num, den *big.Int) Amount {
	return newAmountUnsafe(a, NewFromBigInt(num, den))
}

// ParseAmount converts a human-readable decimal string to an amount.
// The decimal point is shifted by the number of decimals of the asset, so
// ParseAmount(USDC, "1.5") has a raw value of 1500000/1.
// See also constructor [Parse] for the accepted formats.
func ParseAmount(a Asset, amount string) (Amount, error) {
	f, err := parseDecimalShifted(amount, assetOrUnknown(a).Decimals())
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmountUnsafe(a, f), nil
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(a Asset, amount string) Amount {
	m, err := ParseAmount(a, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%v, %q) failed: %v", a, amount, err))
	}
	return m
}

// NewAmountFromDecimal converts a human-readable decimal to an amount.
// Like [ParseAmount], it shifts the decimal point by the number of decimals
// of the asset, so 1.5 USDC has a raw value of 1500000/1. Digits beyond the
// smallest unit of the asset are kept in the raw fraction.
// See also method [Amount.Decimal].
func NewAmountFromDecimal(a Asset, d decimal.Decimal) Amount {
	return newAmountUnsafe(a, newFromDecimalShifted(d, assetOrUnknown(a).Decimals()))
}

func assetOrUnknown(a Asset) Asset {
	if a == nil {
		return XXX
	}
	return a
}

// Asset returns the asset of the amount.
func (a Amount) Asset() Asset {
	return assetOrUnknown(a.asset)
}

// DecimalScale returns 10^d, where d is the number of decimals of the asset.
func (a Amount) DecimalScale() *big.Int {
	return pow10(a.Asset().Decimals())
}

// Fraction implements the [Rational] interface and returns the raw quantity.
func (a Amount) Fraction() Fraction {
	return a.value
}

// SameAsset returns true if amounts are denominated in the same asset.
func (a Amount) SameAsset(b Amount) bool {
	return a.Asset().Equal(b.Asset())
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0 or a is NaN
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.asset, a.value.Neg())
}

// Add returns the sum of amounts a and b.
//
// Add returns an error wrapping [ErrCurrencyMismatch] if amounts are
// denominated in different assets.
func (a Amount) Add(b Amount) (Amount, error) {
	if !a.SameAsset(b) {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, ErrCurrencyMismatch)
	}
	return newAmountUnsafe(a.asset, a.value.Add(b.value)), nil
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error wrapping [ErrCurrencyMismatch] if amounts are
// denominated in different assets.
func (a Amount) Sub(b Amount) (Amount, error) {
	if !a.SameAsset(b) {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrCurrencyMismatch)
	}
	return newAmountUnsafe(a.asset, a.value.Sub(b.value)), nil
}

// Mul returns the product of amount a and factor r.
// The asset of r, if any, is ignored.
func (a Amount) Mul(r Rational) Amount {
	return newAmountUnsafe(a.asset, a.value.Mul(r))
}

// Quo returns the quotient of amount a and divisor r.
// The asset of r, if any, is ignored.
// Division by zero gives a signed infinity or NaN, see [Fraction.Quo].
func (a Amount) Quo(r Rational) Amount {
	return newAmountUnsafe(a.asset, a.value.Quo(r))
}

// Less returns true if the raw quantity of a is less than r.
func (a Amount) Less(r Rational) bool {
	return a.value.Less(r)
}

// Equal returns true if the raw quantity of a is equal to r.
func (a Amount) Equal(r Rational) bool {
	return a.value.Equal(r)
}

// Greater returns true if the raw quantity of a is greater than r.
func (a Amount) Greater(r Rational) bool {
	return a.value.Greater(r)
}

// human returns the quantity in units of the asset rather than smallest units.
func (a Amount) human() Fraction {
	return a.value.Quo(NewFromInt(a.DecimalScale()))
}

// Decimal returns the human-readable quantity rounded to the number of
// decimals of the asset as a [decimal.Decimal].
// See also constructor [NewAmountFromDecimal].
//
// Decimal returns an error wrapping [ErrInvalidArgument] if:
//   - the amount is NaN or an infinity;
//   - the asset has more than [decimal.MaxScale] decimals;
//   - the result does not fit into a decimal.
func (a Amount) Decimal(rounding Rounding) (decimal.Decimal, error) {
	d, err := a.human().Decimal(a.Asset().Decimals(), rounding)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", a, err)
	}
	return d, nil
}

// ToSignificant returns the human-readable quantity rounded to the given
// number of significant digits.
// See also method [Fraction.ToSignificant].
func (a Amount) ToSignificant(digits int, rounding Rounding) (string, error) {
	return a.human().ToSignificant(digits, rounding)
}

// ToFixed returns the human-readable quantity rounded to the given number of
// digits after the decimal point.
// See also method [Fraction.ToFixed].
//
// ToFixed returns an error wrapping [ErrInvalidArgument] if places is
// negative or greater than the number of decimals of the asset.
func (a Amount) ToFixed(places int, rounding Rounding) (string, error) {
	if dec := a.Asset().Decimals(); places > dec {
		return "", fmt.Errorf("formatting %v to %v decimal places: asset has %v decimals: %w", a, places, dec, ErrInvalidArgument)
	}
	return a.human().ToFixed(places, rounding)
}

// ToExact returns the human-readable quantity without any rounding beyond
// the smallest unit of the asset: fractions of the smallest unit are
// discarded toward negative infinity and trailing zeros are removed.
// NaN and infinities are rendered as "NaN", "Infinity" and "-Infinity".
func (a Amount) ToExact() string {
	q, ok := a.value.Quotient()
	if !ok {
		return a.value.special()
	}
	return trimmed(q, -a.Asset().Decimals(), q.Sign() < 0)
}

// RawAmount returns the raw quantity rounded half up to an integer number of
// smallest units.
func (a Amount) RawAmount() string {
	s, err := a.value.ToFixed(0, RoundHalfUp)
	if err != nil {
		return a.value.String()
	}
	return s
}

// Wrapped returns the same quantity of the wrapped form of the asset.
// Amounts of assets that are already canonical are returned unchanged.
// See also method [Asset.Wrapped].
func (a Amount) Wrapped() Amount {
	curr := a.Asset()
	w := curr.Wrapped()
	if w.Equal(curr) {
		return a
	}
	return newAmountUnsafe(w, a.value)
}

// LimitDecimals returns an amount whose human-readable quantity has at most
// the given number of digits after the decimal point.
// Unlike [Amount.ToFixed], the precision is lost in the result itself.
//
// LimitDecimals returns an error if places is negative or greater than the
// number of decimals of the asset.
func (a Amount) LimitDecimals(places int, rounding Rounding) (Amount, error) {
	s, err := a.ToFixed(places, rounding)
	if err != nil {
		return Amount{}, fmt.Errorf("limiting %v to %v decimal places: %w", a, places, err)
	}
	return ParseAmount(a.asset, s)
}

// String implements the [fmt.Stringer] interface and returns the asset
// followed by the exact human-readable quantity, e.g. "USDC 1.5".
// See also method [Amount.ToExact].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return fmt.Sprintf("%v %v", a.Asset(), a.ToExact())
}
