// Package arithmetic provides the four binary operations and remainder,
// generic over every integer and floating-point type.
//
// Add, Subtract and Multiply are total and follow Go's operator semantics
// (integers wrap on overflow). Divide and the remainder functions reject a
// zero divisor with apperrors.ErrDivisionByZero.
package arithmetic

import (
	"math"

	"github.com/agbru/gocommon/pkg/apperrors"
	"github.com/agbru/gocommon/pkg/numeric"
)

// Add returns a + b.
func Add[T numeric.Number](a, b T) T {
	return a + b
}

// Subtract returns a - b.
func Subtract[T numeric.Number](a, b T) T {
	return a - b
}

// Multiply returns a * b.
func Multiply[T numeric.Number](a, b T) T {
	return a * b
}

// Divide returns a / b. Integer division truncates toward zero, so
// Divide(a, b)*b + Modulo(a, b) == a for every non-zero b.
//
// Returns:
//   - T: The quotient.
//   - error: ErrDivisionByZero if b is zero (including -0.0).
func Divide[T numeric.Number](a, b T) (T, error) {
	if b == 0 {
		return 0, apperrors.DomainError{Op: "divide", Kind: apperrors.ErrDivisionByZero}
	}
	return a / b, nil
}

// Modulo returns the remainder of a / b. The sign follows the dividend.
func Modulo[T numeric.Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, apperrors.DomainError{Op: "modulo", Kind: apperrors.ErrDivisionByZero}
	}
	return a % b, nil
}

// FloatModulo is Modulo for floating-point operands, with math.Mod semantics.
func FloatModulo[T numeric.Float](a, b T) (T, error) {
	if b == 0 {
		return 0, apperrors.DomainError{Op: "modulo", Kind: apperrors.ErrDivisionByZero}
	}
	return T(math.Mod(float64(a), float64(b))), nil
}
