//go:build trigonometry || full

// Package trigonometry provides circular functions on radians, their
// inverses and reciprocals, and degree/radian conversion. It is compiled only
// with the "trigonometry" or "full" build tag.
package trigonometry

import (
	"math"

	"github.com/agbru/gocommon/pkg/apperrors"
	"github.com/agbru/gocommon/pkg/math/constants"
)

// Sin returns the sine of x radians.
func Sin(x float64) float64 { return math.Sin(x) }

// Cos returns the cosine of x radians.
func Cos(x float64) float64 { return math.Cos(x) }

// Tan returns the tangent of x radians.
func Tan(x float64) float64 { return math.Tan(x) }

// Atan returns the arctangent of x in radians.
func Atan(x float64) float64 { return math.Atan(x) }

// Atan2 returns the arctangent of y/x, using the signs of both to pick the
// quadrant.
func Atan2(y, x float64) float64 { return math.Atan2(y, x) }

// Asin returns the arcsine of x in radians.
//
// Returns:
//   - float64: A value in [-π/2, π/2].
//   - error: ErrInvalidInput when x lies outside [-1, 1] or is NaN.
func Asin(x float64) (float64, error) {
	if err := checkUnitInterval("asin", x); err != nil {
		return 0, err
	}
	return math.Asin(x), nil
}

// Acos returns the arccosine of x in radians, in [0, π].
func Acos(x float64) (float64, error) {
	if err := checkUnitInterval("acos", x); err != nil {
		return 0, err
	}
	return math.Acos(x), nil
}

func checkUnitInterval(op string, x float64) error {
	if math.IsNaN(x) || x < -1 || x > 1 {
		return apperrors.NewDomainError(op, apperrors.ErrInvalidInput, "argument %g outside [-1, 1]", x)
	}
	return nil
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * constants.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / constants.Pi
}

// Csc returns the cosecant 1/sin(x).
//
// The zero test is exact: sin(π) evaluates to about 1.2e-16 in float64, so
// Csc(math.Pi) returns a large finite value rather than an error.
func Csc(x float64) (float64, error) {
	return reciprocal("csc", math.Sin(x), x)
}

// Sec returns the secant 1/cos(x).
func Sec(x float64) (float64, error) {
	return reciprocal("sec", math.Cos(x), x)
}

// Cot returns the cotangent 1/tan(x).
func Cot(x float64) (float64, error) {
	return reciprocal("cot", math.Tan(x), x)
}

func reciprocal(op string, v, x float64) (float64, error) {
	if v == 0 {
		return 0, apperrors.NewDomainError(op, apperrors.ErrDivisionByZero, "base function is zero at %g", x)
	}
	return 1 / v, nil
}
