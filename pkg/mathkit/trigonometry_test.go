//go:build trigonometry || full

package mathkit

import (
	"errors"
	"math"
	"testing"
)

func TestTrigonometryFacade(t *testing.T) {
	t.Parallel()
	if !HasFeature(FeatureTrigonometry) {
		t.Fatalf("Features() = %v, missing %q", Features(), FeatureTrigonometry)
	}
	if got := RadToDeg(DegToRad(45)); math.Abs(got-45) > 1e-12 {
		t.Errorf("RadToDeg(DegToRad(45)) = %v, want 45", got)
	}
	if _, err := Asin(2); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Asin(2) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Cot(0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Cot(0) error = %v, want ErrDivisionByZero", err)
	}
}
