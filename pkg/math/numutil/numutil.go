// Package numutil provides parity, absolute value, factorial, primality and
// digit-count helpers.
package numutil

import (
	"math"

	"github.com/agbru/gocommon/pkg/apperrors"
	"github.com/agbru/gocommon/pkg/numeric"
)

const (
	// MaxFactorialInput is the largest n whose factorial fits in a uint64.
	// 20! = 2432902008176640000; 21! exceeds 1<<64.
	MaxFactorialInput = 20

	// maxPrimeInt64 is the largest prime representable as an int64 (2^63 - 25).
	maxPrimeInt64 = math.MaxInt64 - 24
)

// IsEven reports whether n is divisible by two.
func IsEven[T numeric.Integer](n T) bool {
	return n%2 == 0
}

// IsOdd reports whether n is not divisible by two. Negative odd numbers
// yield a remainder of -1, hence the inequality.
func IsOdd[T numeric.Integer](n T) bool {
	return n%2 != 0
}

// Abs returns the absolute value of n. For signed integers the most negative
// value has no positive counterpart and is returned unchanged. For floats,
// -0 maps to +0 and NaN is returned as is, matching math.Abs.
func Abs[T numeric.Signed | numeric.Float](n T) T {
	switch {
	case n < 0:
		return -n
	case n == 0:
		// Also clears the sign bit of a float -0.
		return 0
	}
	return n
}

// Factorial computes n! iteratively.
//
// Parameters:
//   - n: A non-negative integer no greater than MaxFactorialInput.
//
// Returns:
//   - uint64: n!
//   - error: ErrInvalidInput for negative n, ErrOverflow above MaxFactorialInput.
func Factorial(n int64) (uint64, error) {
	if n < 0 {
		return 0, apperrors.NewDomainError("factorial", apperrors.ErrInvalidInput, "n=%d is negative", n)
	}
	if n > MaxFactorialInput {
		return 0, apperrors.NewDomainError("factorial", apperrors.ErrOverflow,
			"n=%d exceeds %d, the largest input whose factorial fits in uint64", n, MaxFactorialInput)
	}
	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}
	return result, nil
}

// IsPrime reports whether n is prime using trial division by odd candidates
// up to √n. Values below 2 are not prime.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	// i <= n/i avoids overflowing i*i near MaxInt64.
	for i := int64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly greater than n.
//
// Returns:
//   - int64: The next prime; 2 for any n below 2.
//   - error: ErrOverflow when n is at or above the largest int64 prime.
func NextPrime(n int64) (int64, error) {
	if n < 2 {
		return 2, nil
	}
	if n >= maxPrimeInt64 {
		return 0, apperrors.NewDomainError("next_prime", apperrors.ErrOverflow,
			"no int64 prime greater than %d", n)
	}
	candidate := n + 1
	for !IsPrime(candidate) {
		candidate++
	}
	return candidate, nil
}

// DigitCount returns the number of base-10 digits in |n|. Zero has one digit.
// The count is taken on n itself rather than Abs(n) so the most negative
// integer is handled.
func DigitCount[T numeric.Integer](n T) int {
	if n == 0 {
		return 1
	}
	count := 0
	for n != 0 {
		n /= 10
		count++
	}
	return count
}
