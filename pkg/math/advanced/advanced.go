//go:build advanced || full

// Package advanced provides exponentiation, GCD/LCM, roots, logarithms and
// hyperbolic functions. It is compiled only with the "advanced" or "full"
// build tag.
//
// Functions whose argument has a restricted domain return an error instead
// of NaN or ±Inf, so a bad input never travels downstream as a poisoned float.
package advanced

import (
	"math"
	"math/bits"

	"github.com/agbru/gocommon/pkg/apperrors"
)

// Pow returns base**exponent with floating-point semantics. Negative
// exponents yield the reciprocal power.
//
// Returns:
//   - float64: The power.
//   - error: ErrDivisionByZero for zero raised to a negative power,
//     ErrInvalidInput for NaN inputs or a negative base with a non-integer
//     exponent, ErrOverflow when finite inputs produce an infinite result.
func Pow(base, exponent float64) (float64, error) {
	if math.IsNaN(base) || math.IsNaN(exponent) {
		return 0, apperrors.NewDomainError("pow", apperrors.ErrInvalidInput, "NaN argument")
	}
	if base == 0 && exponent < 0 {
		return 0, apperrors.NewDomainError("pow", apperrors.ErrDivisionByZero,
			"zero raised to negative power %g", exponent)
	}
	if base < 0 && !math.IsInf(exponent, 0) && exponent != math.Trunc(exponent) {
		return 0, apperrors.NewDomainError("pow", apperrors.ErrInvalidInput,
			"negative base %g with non-integer exponent %g", base, exponent)
	}
	result := math.Pow(base, exponent)
	if math.IsInf(result, 0) && !math.IsInf(base, 0) && !math.IsInf(exponent, 0) {
		return 0, apperrors.NewDomainError("pow", apperrors.ErrOverflow, "%g**%g", base, exponent)
	}
	return result, nil
}

// PowInt returns base**exponent by repeated squaring. Negative exponents are
// rejected; use Pow when a fractional reciprocal is wanted.
func PowInt(base, exponent int64) (int64, error) {
	if exponent < 0 {
		return 0, apperrors.NewDomainError("pow", apperrors.ErrInvalidInput,
			"negative exponent %d for integer power", exponent)
	}
	result := int64(1)
	for exponent > 0 {
		var ok bool
		if exponent&1 == 1 {
			if result, ok = mulInt64(result, base); !ok {
				return 0, apperrors.NewDomainError("pow", apperrors.ErrOverflow, "result exceeds int64")
			}
		}
		exponent >>= 1
		if exponent > 0 {
			if base, ok = mulInt64(base, base); !ok {
				return 0, apperrors.NewDomainError("pow", apperrors.ErrOverflow, "result exceeds int64")
			}
		}
	}
	return result, nil
}

// mulInt64 multiplies with overflow detection.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || c/b != a {
		return 0, false
	}
	return c, true
}

// GCD returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. GCD(0, 0) is 0. The result is unsigned so |MinInt64| fits.
func GCD(a, b int64) uint64 {
	return gcd(absUint64(a), absUint64(b))
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple |a*b| / GCD(a, b). LCM(0, b) is 0
// for non-zero b.
//
// Returns:
//   - uint64: The least common multiple.
//   - error: ErrDivisionByZero when both inputs are zero, ErrOverflow when
//     the result does not fit in uint64.
func LCM(a, b int64) (uint64, error) {
	if a == 0 && b == 0 {
		return 0, apperrors.NewDomainError("lcm", apperrors.ErrDivisionByZero, "gcd(0, 0) is zero")
	}
	ua, ub := absUint64(a), absUint64(b)
	hi, lo := bits.Mul64(ua/gcd(ua, ub), ub)
	if hi != 0 {
		return 0, apperrors.NewDomainError("lcm", apperrors.ErrOverflow, "lcm(%d, %d) exceeds uint64", a, b)
	}
	return lo, nil
}

func absUint64(n int64) uint64 {
	if n < 0 {
		return -uint64(n)
	}
	return uint64(n)
}

// Sqrt returns the square root of x.
func Sqrt(x float64) (float64, error) {
	if math.IsNaN(x) || x < 0 {
		return 0, apperrors.NewDomainError("sqrt", apperrors.ErrInvalidInput, "argument %g is negative or NaN", x)
	}
	return math.Sqrt(x), nil
}

// Cbrt returns the cube root of x. Defined for every real x.
func Cbrt(x float64) float64 {
	return math.Cbrt(x)
}

// Ln returns the natural logarithm of x.
func Ln(x float64) (float64, error) {
	if err := checkLogDomain("ln", x); err != nil {
		return 0, err
	}
	return math.Log(x), nil
}

// Log10 returns the base-10 logarithm of x.
func Log10(x float64) (float64, error) {
	if err := checkLogDomain("log10", x); err != nil {
		return 0, err
	}
	return math.Log10(x), nil
}

// Log2 returns the base-2 logarithm of x.
func Log2(x float64) (float64, error) {
	if err := checkLogDomain("log2", x); err != nil {
		return 0, err
	}
	return math.Log2(x), nil
}

// checkLogDomain rejects non-positive and NaN arguments.
func checkLogDomain(op string, x float64) error {
	if math.IsNaN(x) || x <= 0 {
		return apperrors.NewDomainError(op, apperrors.ErrInvalidInput, "argument %g is not positive", x)
	}
	return nil
}

// Exp returns e**x.
func Exp(x float64) float64 { return math.Exp(x) }

// Sinh returns the hyperbolic sine of x.
func Sinh(x float64) float64 { return math.Sinh(x) }

// Cosh returns the hyperbolic cosine of x.
func Cosh(x float64) float64 { return math.Cosh(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 { return math.Tanh(x) }
