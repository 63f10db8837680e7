// Package constants provides named mathematical constants.
//
// The values are untyped constants, so they adapt to float32 or float64 at
// the use site without conversion and are computed at full precision by the
// compiler.
package constants

import "math"

const (
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = math.Pi

	// E is Euler's number, the base of the natural logarithm.
	E = math.E

	// Tau is 2π, the ratio of a circle's circumference to its radius.
	Tau = 2 * Pi

	// Phi is the golden ratio (1+√5)/2.
	Phi = math.Phi

	Sqrt2 = math.Sqrt2
	Sqrt3 = 1.73205080756887729352744634150587236694280525381038

	Ln2    = math.Ln2
	Ln10   = math.Ln10
	Log2E  = math.Log2E
	Log10E = math.Log10E

	// EulerGamma is the Euler–Mascheroni constant γ.
	EulerGamma = 0.57721566490153286060651209008240243104215933593992

	// Catalan is Catalan's constant G.
	Catalan = 0.91596559417721901505460351493238411077414937428167

	// Apery is Apéry's constant ζ(3).
	Apery = 1.20205690315959428539973816151144999076498629234050
)
