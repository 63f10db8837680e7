package mathkit

import "slices"

// Feature names reported by Features.
const (
	FeatureBasic        = "basic"
	FeatureAdvanced     = "advanced"
	FeatureStatistics   = "statistics"
	FeatureTrigonometry = "trigonometry"
)

// features is appended to by the init function of each gated file.
var features = []string{FeatureBasic}

func register(name string) {
	features = append(features, name)
}

// Features returns the sorted names of the namespaces compiled into this
// binary. "basic" is always included.
func Features() []string {
	out := slices.Clone(features)
	slices.Sort(out)
	return out
}

// HasFeature reports whether the named namespace was compiled in.
func HasFeature(name string) bool {
	return slices.Contains(features, name)
}
