//go:build statistics || full

package mathkit

import "github.com/agbru/gocommon/pkg/math/statistics"

func init() { register(FeatureStatistics) }

// Re-exported from pkg/math/statistics.
var (
	Mean     = statistics.Mean
	Median   = statistics.Median
	Mode     = statistics.Mode
	Variance = statistics.Variance
	StdDev   = statistics.StdDev
	Min      = statistics.Min
	Max      = statistics.Max
	Range    = statistics.Range
	Sum      = statistics.Sum
	Product  = statistics.Product
)
