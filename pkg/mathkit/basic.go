package mathkit

import (
	"github.com/agbru/gocommon/pkg/apperrors"
	"github.com/agbru/gocommon/pkg/math/arithmetic"
	"github.com/agbru/gocommon/pkg/math/constants"
	"github.com/agbru/gocommon/pkg/math/numutil"
	"github.com/agbru/gocommon/pkg/numeric"
)

// Constants re-exported from pkg/math/constants.
const (
	Pi         = constants.Pi
	E          = constants.E
	Tau        = constants.Tau
	Phi        = constants.Phi
	Sqrt2      = constants.Sqrt2
	Sqrt3      = constants.Sqrt3
	Ln2        = constants.Ln2
	Ln10       = constants.Ln10
	Log2E      = constants.Log2E
	Log10E     = constants.Log10E
	EulerGamma = constants.EulerGamma
	Catalan    = constants.Catalan
	Apery      = constants.Apery
)

// MaxFactorialInput is the largest n accepted by Factorial.
const MaxFactorialInput = numutil.MaxFactorialInput

// Error kinds re-exported from pkg/apperrors so callers can test results
// without a second import.
var (
	ErrDivisionByZero = apperrors.ErrDivisionByZero
	ErrInvalidInput   = apperrors.ErrInvalidInput
	ErrOverflow       = apperrors.ErrOverflow
	ErrEmptyInput     = apperrors.ErrEmptyInput
)

// Re-exported non-generic functions from pkg/math/numutil.
var (
	// Factorial returns n! for 0 <= n <= MaxFactorialInput.
	Factorial = numutil.Factorial

	// IsPrime reports whether n is prime.
	IsPrime = numutil.IsPrime

	// NextPrime returns the smallest prime strictly greater than n.
	NextPrime = numutil.NextPrime
)

// Generic functions cannot be bound to variables without instantiation, so
// they are forwarded.

func Add[T numeric.Number](a, b T) T      { return arithmetic.Add(a, b) }
func Subtract[T numeric.Number](a, b T) T { return arithmetic.Subtract(a, b) }
func Multiply[T numeric.Number](a, b T) T { return arithmetic.Multiply(a, b) }

func Divide[T numeric.Number](a, b T) (T, error)     { return arithmetic.Divide(a, b) }
func Modulo[T numeric.Integer](a, b T) (T, error)    { return arithmetic.Modulo(a, b) }
func FloatModulo[T numeric.Float](a, b T) (T, error) { return arithmetic.FloatModulo(a, b) }

func IsEven[T numeric.Integer](n T) bool          { return numutil.IsEven(n) }
func IsOdd[T numeric.Integer](n T) bool           { return numutil.IsOdd(n) }
func Abs[T numeric.Signed | numeric.Float](n T) T { return numutil.Abs(n) }
func DigitCount[T numeric.Integer](n T) int       { return numutil.DigitCount(n) }
