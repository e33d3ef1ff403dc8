package fraction

import (
	"fmt"
	"math"
	"math/big"
)

// maxSafeInt is the largest integer n such that every integer in [0, n]
// is exactly representable as a float64.
var maxSafeInt = big.NewInt(1<<53 - 1)

var bigTwo = big.NewInt(2)

// Sqrt returns the square root of x rounded toward zero, that is the largest
// integer z such that z*z <= x. The argument is not modified.
//
// Small values are computed with [math.Sqrt] and corrected to the exact
// integer root; larger values use Newton's method on big integers.
//
// Sqrt returns an error wrapping [ErrInvalidArgument] if x is negative.
func Sqrt(x *big.Int) (*big.Int, error) {
	if x == nil || x.Sign() < 0 {
		return nil, fmt.Errorf("computing [sqrt(%v)]: negative value: %w", x, ErrInvalidArgument)
	}

	// Fast path
	if x.Cmp(maxSafeInt) < 0 {
		n := x.Uint64()
		z := uint64(math.Sqrt(float64(n)))
		for z*z > n {
			z--
		}
		for (z+1)*(z+1) <= n {
			z++
		}
		return new(big.Int).SetUint64(z), nil
	}

	// Newton's method, the sequence decreases until it reaches the root
	z := new(big.Int).Set(x)
	y := new(big.Int).Quo(x, bigTwo)
	y.Add(y, bigOne)
	for y.Cmp(z) < 0 {
		z.Set(y)
		y.Quo(x, z)
		y.Add(y, z)
		y.Quo(y, bigTwo)
	}
	return z, nil
}
