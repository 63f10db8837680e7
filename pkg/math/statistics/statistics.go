//go:build statistics || full

// Package statistics provides descriptive statistics over float64 samples,
// built on gonum. It is compiled only with the "statistics" or "full" build
// tag.
//
// Every function rejects an empty sample with apperrors.ErrEmptyInput and a
// sample containing NaN with apperrors.ErrInvalidInput. Input slices are
// never modified.
//
// Variance and StdDev are population statistics: the sum of squared
// deviations is divided by n, not n-1.
//
// Results are never NaN. A sample of finite values whose result does not fit
// in a float64 fails with apperrors.ErrOverflow; an undefined result from
// infinite inputs (such as +Inf + -Inf) fails with apperrors.ErrInvalidInput.
// Mean, Median, Variance and StdDev rescale the sample before giving up, so
// an intermediate overflow alone does not fail them.
package statistics

import (
	"math"
	"slices"

	"github.com/agbru/gocommon/pkg/apperrors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// validate applies the empty and NaN checks shared by every function.
func validate(op string, data []float64) error {
	if len(data) == 0 {
		return apperrors.DomainError{Op: op, Kind: apperrors.ErrEmptyInput}
	}
	if floats.HasNaN(data) {
		return apperrors.NewDomainError(op, apperrors.ErrInvalidInput, "sample contains NaN")
	}
	return nil
}

// checkResult converts a non-finite result into the matching error kind.
// ±Inf is passed through only when the sample itself holds an infinity.
func checkResult(op string, data []float64, r float64) (float64, error) {
	switch {
	case math.IsNaN(r):
		return 0, apperrors.NewDomainError(op, apperrors.ErrInvalidInput, "result is undefined for this sample")
	case math.IsInf(r, 0) && allFinite(data):
		return 0, apperrors.NewDomainError(op, apperrors.ErrOverflow, "result exceeds the float64 range")
	}
	return r, nil
}

func allFinite(data []float64) bool {
	for _, v := range data {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// rescaled returns data divided by its largest magnitude, and that
// magnitude. Every returned value lies in [-1, 1].
func rescaled(data []float64) ([]float64, float64) {
	scale := math.Max(math.Abs(floats.Min(data)), math.Abs(floats.Max(data)))
	out := slices.Clone(data)
	if scale == 0 {
		return out, 0
	}
	for i := range out {
		out[i] /= scale
	}
	return out, scale
}

// Mean returns the arithmetic average.
func Mean(data []float64) (float64, error) {
	if err := validate("mean", data); err != nil {
		return 0, err
	}
	m := stat.Mean(data, nil)
	if !isFinite(m) && allFinite(data) {
		// The running sum overflowed; the mean itself may still fit.
		unit, scale := rescaled(data)
		m = stat.Mean(unit, nil) * scale
	}
	return checkResult("mean", data, m)
}

// Median returns the middle value of the sorted sample, or the average of
// the two middle values when the length is even.
func Median(data []float64) (float64, error) {
	if err := validate("median", data); err != nil {
		return 0, err
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	lo, hi := sorted[mid-1], sorted[mid]
	m := (lo + hi) / 2
	if math.IsInf(m, 0) && allFinite(sorted) {
		m = lo/2 + hi/2
	}
	return checkResult("median", data, m)
}

// Mode returns the most frequent value. When several values share the
// highest frequency, the smallest of them is returned. Values are compared
// with exact float64 equality; -0 and +0 count as the same value.
func Mode(data []float64) (float64, error) {
	if err := validate("mode", data); err != nil {
		return 0, err
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	mode, best := sorted[0], 0
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		// Strict > keeps the earliest, hence smallest, value on ties.
		if run := j - i; run > best {
			mode, best = sorted[i], run
		}
		i = j
	}
	return mode, nil
}

// Variance returns the population variance.
func Variance(data []float64) (float64, error) {
	if err := validate("variance", data); err != nil {
		return 0, err
	}
	v := stat.PopVariance(data, nil)
	if !isFinite(v) && allFinite(data) {
		unit, scale := rescaled(data)
		// Evaluated as (v*scale)*scale; scale*scale alone may overflow.
		v = stat.PopVariance(unit, nil) * scale * scale
	}
	return checkResult("variance", data, v)
}

// StdDev returns the population standard deviation.
func StdDev(data []float64) (float64, error) {
	if err := validate("std_dev", data); err != nil {
		return 0, err
	}
	sd := stat.PopStdDev(data, nil)
	if !isFinite(sd) && allFinite(data) {
		unit, scale := rescaled(data)
		sd = stat.PopStdDev(unit, nil) * scale
	}
	return checkResult("std_dev", data, sd)
}

// Min returns the smallest value.
func Min(data []float64) (float64, error) {
	if err := validate("min", data); err != nil {
		return 0, err
	}
	return floats.Min(data), nil
}

// Max returns the largest value.
func Max(data []float64) (float64, error) {
	if err := validate("max", data); err != nil {
		return 0, err
	}
	return floats.Max(data), nil
}

// Range returns Max - Min.
func Range(data []float64) (float64, error) {
	if err := validate("range", data); err != nil {
		return 0, err
	}
	return checkResult("range", data, floats.Max(data)-floats.Min(data))
}

// Sum returns the sum of all values.
func Sum(data []float64) (float64, error) {
	if err := validate("sum", data); err != nil {
		return 0, err
	}
	return checkResult("sum", data, floats.Sum(data))
}

// Product returns the product of all values.
func Product(data []float64) (float64, error) {
	if err := validate("product", data); err != nil {
		return 0, err
	}
	return checkResult("product", data, floats.Prod(data))
}
