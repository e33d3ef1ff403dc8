package fraction

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrInvalidArgument is returned when a formatting or numeric parameter
	// is out of range, e.g. a non-positive number of significant digits or
	// a negative square root input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCurrencyMismatch is returned by operations on amounts denominated
	// in different assets.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrParse is returned when a string or scalar cannot be converted to a fraction.
	ErrParse = errors.New("parse failure")
)

// MaxUint256 is the largest value of an unsigned 256-bit integer.
var MaxUint256 = func() *big.Int {
	x := new(big.Int).Lsh(big.NewInt(1), 256)
	return x.Sub(x, big.NewInt(1))
}()

// Rounding selects how a value is rounded when it is rendered with
// a limited number of digits.
type Rounding int

const (
	// RoundDown truncates toward zero.
	RoundDown Rounding = iota
	// RoundHalfUp rounds to the nearest neighbour, ties away from zero.
	RoundHalfUp
	// RoundUp rounds away from zero.
	RoundUp
)

// ParseRounding converts a string to a rounding mode.
// The accepted names are "down", "half-up" (or "half_up") and "up",
// in any letter case.
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(s) {
	case "down", "round_down":
		return RoundDown, nil
	case "half-up", "half_up", "round_half_up":
		return RoundHalfUp, nil
	case "up", "round_up":
		return RoundUp, nil
	}
	return 0, fmt.Errorf("parsing rounding %q: %w", s, ErrParse)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rounding) String() string {
	switch r {
	case RoundDown:
		return "down"
	case RoundHalfUp:
		return "half-up"
	case RoundUp:
		return "up"
	}
	return fmt.Sprintf("Rounding(%d)", int(r))
}

func (r Rounding) valid() bool {
	return r == RoundDown || r == RoundHalfUp || r == RoundUp
}

// TradeType marks which side of a trade is fixed.
// The fraction package only declares it; trade sizing is left to callers.
type TradeType int

const (
	// ExactInput means the input amount is fixed and the output is computed.
	ExactInput TradeType = iota
	// ExactOutput means the output amount is fixed and the input is computed.
	ExactOutput
)

func (t TradeType) String() string {
	switch t {
	case ExactInput:
		return "exact-input"
	case ExactOutput:
		return "exact-output"
	}
	return fmt.Sprintf("TradeType(%d)", int(t))
}
