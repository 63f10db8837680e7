// Package config contains the environment variable helpers used to override
// programmatic configuration.
package config

import (
	"os"
	"strings"
)

// EnvPrefix is prepended to every environment variable key read by this module.
const EnvPrefix = "GOCOMMON_"

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// ParseBoolEnv parses a boolean environment variable value.
// Returns defaultVal if the value is not recognized.
func ParseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	return defaultVal
}

// EnvOverride declares a single environment variable override for a value of
// type T. EnvKey excludes EnvPrefix.
type EnvOverride[T any] struct {
	EnvKey string
	Apply  func(*T, string)
}

// ApplyEnvOverrides runs each override whose variable is set and non-empty,
// in table order.
func ApplyEnvOverrides[T any](target *T, overrides []EnvOverride[T]) {
	for _, o := range overrides {
		if val := os.Getenv(EnvPrefix + o.EnvKey); val != "" {
			o.Apply(target, val)
		}
	}
}
