//go:build advanced || full

package mathkit

import "github.com/agbru/gocommon/pkg/math/advanced"

func init() { register(FeatureAdvanced) }

// Re-exported from pkg/math/advanced.
var (
	Pow    = advanced.Pow
	PowInt = advanced.PowInt
	GCD    = advanced.GCD
	LCM    = advanced.LCM
	Sqrt   = advanced.Sqrt
	Cbrt   = advanced.Cbrt
	Ln     = advanced.Ln
	Log10  = advanced.Log10
	Log2   = advanced.Log2
	Exp    = advanced.Exp
	Sinh   = advanced.Sinh
	Cosh   = advanced.Cosh
	Tanh   = advanced.Tanh
)
