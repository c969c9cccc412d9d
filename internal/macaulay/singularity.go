package macaulay

import (
	"errors"
	"fmt"
	"math"
)

// MinExponent is the lowest exponent a singularity function accepts.
// Exponents -1 and -2 stand for point forces and point moments.
const MinExponent = -2

// ErrDomain is returned for arguments outside the domain of <x-a>^n
var ErrDomain = errors.New("singularity function domain error")

// Singularity evaluates Macaulay's bracket <x-a>^n
//
//	x < a          -> 0
//	x >= a, n < 0  -> 0
//	x >= a, n >= 0 -> (x-a)^n
func Singularity(x, a float64, n int) (float64, error) {
	if err := checkArgs(x, a, n); err != nil {
		return 0, err
	}
	return singularity(x, a, n), nil
}

func checkArgs(x, a float64, n int) error {
	if n < MinExponent {
		return fmt.Errorf("%w: exponent %d is below %d", ErrDomain, n, MinExponent)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("%w: x=%v is not a finite real number", ErrDomain, x)
	}
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return fmt.Errorf("%w: a=%v is not a finite real number", ErrDomain, a)
	}
	return nil
}

// singularity assumes validated arguments.
func singularity(x, a float64, n int) float64 {
	shift := x - a
	if shift < 0 || n < 0 {
		return 0
	}
	switch n {
	case 0:
		return 1
	case 1:
		return shift
	case 2:
		return shift * shift
	case 3:
		return shift * shift * shift
	}
	return math.Pow(shift, float64(n))
}
