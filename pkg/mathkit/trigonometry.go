//go:build trigonometry || full

package mathkit

import "github.com/agbru/gocommon/pkg/math/trigonometry"

func init() { register(FeatureTrigonometry) }

// Re-exported from pkg/math/trigonometry.
var (
	Sin      = trigonometry.Sin
	Cos      = trigonometry.Cos
	Tan      = trigonometry.Tan
	Asin     = trigonometry.Asin
	Acos     = trigonometry.Acos
	Atan     = trigonometry.Atan
	Atan2    = trigonometry.Atan2
	DegToRad = trigonometry.DegToRad
	RadToDeg = trigonometry.RadToDeg
	Csc      = trigonometry.Csc
	Sec      = trigonometry.Sec
	Cot      = trigonometry.Cot
)
