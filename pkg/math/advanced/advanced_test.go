//go:build advanced || full

package advanced

import (
	"errors"
	"math"
	"testing"

	"github.com/agbru/gocommon/pkg/apperrors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestPow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		base, exponent float64
		expected       float64
		kind           error
	}{
		{"integer power", 2, 10, 1024, nil},
		{"fractional power", 9, 0.5, 3, nil},
		{"negative exponent is reciprocal", 2, -2, 0.25, nil},
		{"negative base, integer exponent", -2, 3, -8, nil},
		{"zero exponent", 0, 0, 1, nil},
		{"zero to negative power", 0, -1, 0, apperrors.ErrDivisionByZero},
		{"negative base, fractional exponent", -8, 1.0 / 3, 0, apperrors.ErrInvalidInput},
		{"NaN base", math.NaN(), 2, 0, apperrors.ErrInvalidInput},
		{"overflow", 10, 400, 0, apperrors.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Pow(tt.base, tt.exponent)
			if tt.kind != nil {
				if !errors.Is(err, tt.kind) {
					t.Fatalf("Pow(%v, %v) error = %v, want %v", tt.base, tt.exponent, err, tt.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Pow(%v, %v) unexpected error: %v", tt.base, tt.exponent, err)
			}
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Pow(%v, %v) = %v, want %v", tt.base, tt.exponent, got, tt.expected)
			}
		})
	}
}

func TestPowInt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		base, exponent int64
		expected       int64
		kind           error
	}{
		{"2^3", 2, 3, 8, nil},
		{"5^2", 5, 2, 25, nil},
		{"1^10", 1, 10, 1, nil},
		{"0^5", 0, 5, 0, nil},
		{"x^0", 7, 0, 1, nil},
		{"(-3)^3", -3, 3, -27, nil},
		{"2^62", 2, 62, 1 << 62, nil},
		{"(-2)^63 is MinInt64", -2, 63, math.MinInt64, nil},
		{"2^63 overflows", 2, 63, 0, apperrors.ErrOverflow},
		{"10^19 overflows", 10, 19, 0, apperrors.ErrOverflow},
		{"negative exponent", 2, -1, 0, apperrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := PowInt(tt.base, tt.exponent)
			if tt.kind != nil {
				if !errors.Is(err, tt.kind) {
					t.Fatalf("PowInt(%d, %d) error = %v, want %v", tt.base, tt.exponent, err, tt.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("PowInt(%d, %d) unexpected error: %v", tt.base, tt.exponent, err)
			}
			if got != tt.expected {
				t.Errorf("PowInt(%d, %d) = %d, want %d", tt.base, tt.exponent, got, tt.expected)
			}
		})
	}
}

func TestGCDAndLCM(t *testing.T) {
	t.Parallel()
	gcdTests := []struct {
		a, b     int64
		expected uint64
	}{
		{48, 18, 6},
		{54, 24, 6},
		{7, 13, 1},
		{0, 0, 0},
		{0, 9, 9},
		{-12, 18, 6},
		{math.MinInt64, 0, 1 << 63},
	}
	for _, tt := range gcdTests {
		if got := GCD(tt.a, tt.b); got != tt.expected {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}

	lcmTests := []struct {
		a, b     int64
		expected uint64
	}{
		{12, 18, 36},
		{8, 12, 24},
		{5, 7, 35},
		{-4, 6, 12},
		{0, 5, 0},
	}
	for _, tt := range lcmTests {
		got, err := LCM(tt.a, tt.b)
		if err != nil {
			t.Fatalf("LCM(%d, %d) unexpected error: %v", tt.a, tt.b, err)
		}
		if got != tt.expected {
			t.Errorf("LCM(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}

	if _, err := LCM(0, 0); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("LCM(0, 0) error = %v, want ErrDivisionByZero", err)
	}
	if _, err := LCM(math.MaxInt64, math.MaxInt64-1); !errors.Is(err, apperrors.ErrOverflow) {
		t.Errorf("LCM(MaxInt64, MaxInt64-1) error = %v, want ErrOverflow", err)
	}
}

func TestRootsAndLogs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		fn       func(float64) (float64, error)
		x        float64
		expected float64
		invalid  bool
	}{
		{"Sqrt(4)", Sqrt, 4, 2, false},
		{"Sqrt(0)", Sqrt, 0, 0, false},
		{"Sqrt(-1)", Sqrt, -1, 0, true},
		{"Sqrt(NaN)", Sqrt, math.NaN(), 0, true},
		{"Ln(e)", Ln, math.E, 1, false},
		{"Ln(0)", Ln, 0, 0, true},
		{"Ln(-1)", Ln, -1, 0, true},
		{"Log10(1000)", Log10, 1000, 3, false},
		{"Log10(0)", Log10, 0, 0, true},
		{"Log2(8)", Log2, 8, 3, false},
		{"Log2(-8)", Log2, -8, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.fn(tt.x)
			if tt.invalid {
				if !errors.Is(err, apperrors.ErrInvalidInput) {
					t.Fatalf("%s error = %v, want ErrInvalidInput", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("%s unexpected error: %v", tt.name, err)
			}
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestTotalWrappers(t *testing.T) {
	t.Parallel()
	if got := Cbrt(-27); math.Abs(got+3) > 1e-12 {
		t.Errorf("Cbrt(-27) = %v, want -3", got)
	}
	if got := Exp(0); got != 1 {
		t.Errorf("Exp(0) = %v, want 1", got)
	}
	if got := Sinh(0); got != 0 {
		t.Errorf("Sinh(0) = %v, want 0", got)
	}
	if got := Cosh(0); got != 1 {
		t.Errorf("Cosh(0) = %v, want 1", got)
	}
	if got := Tanh(math.Inf(1)); got != 1 {
		t.Errorf("Tanh(+Inf) = %v, want 1", got)
	}
}

// TestGCD_PropertyBased verifies the divisibility, commutativity and
// GCD·LCM identities over random inputs.
func TestGCD_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("GCD divides both inputs", prop.ForAll(
		func(a, b int64) bool {
			g := GCD(a, b)
			if g == 0 {
				return a == 0 && b == 0
			}
			return absUint64(a)%g == 0 && absUint64(b)%g == 0
		},
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("GCD is commutative", prop.ForAll(
		func(a, b int64) bool {
			return GCD(a, b) == GCD(b, a)
		},
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("LCM(a, b) * GCD(a, b) == |a*b|", prop.ForAll(
		func(a, b int64) bool {
			if a == 0 {
				a = 1
			}
			if b == 0 {
				b = -1
			}
			l, err := LCM(a, b)
			if err != nil {
				return false
			}
			return l*GCD(a, b) == absUint64(a)*absUint64(b)
		},
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.Int64Range(-1_000_000, 1_000_000),
	))

	properties.TestingRun(t)
}
