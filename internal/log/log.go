// Package log centralizes the structured logging calls the optimizer
// packages make, so verbosity levels and key names stay consistent across
// the driver and the NSGA-III normalization fallback.
package log

import "k8s.io/klog/v2"

// Verbosity levels used across this module. Kept as named constants
// rather than bare numbers at call sites, matching the teacher's practice
// of picking one V-level per concern (defaults registration logs at V(5)).
const (
	// LevelGeneration logs once per algorithm generation.
	LevelGeneration = klog.Level(2)
	// LevelDetail logs per-operator or per-individual bookkeeping.
	LevelDetail = klog.Level(4)
	// LevelDefaults logs one-time setup, matching the teacher's
	// defaults.go verbosity for registering configuration defaults.
	LevelDefaults = klog.Level(5)
)

// InfoS logs a structured informational message unconditionally.
func InfoS(msg string, keysAndValues ...any) {
	klog.InfoS(msg, keysAndValues...)
}

// V reports whether the given verbosity level is enabled, for guarding an
// expensive keysAndValues computation before calling InfoS.
func V(level klog.Level) klog.Verbose {
	return klog.V(level)
}

// Warningf logs a formatted warning, used for the NSGA-III normalization
// fallback when the hyperplane intercept solve is numerically unreliable.
func Warningf(format string, args ...any) {
	klog.Warningf(format, args...)
}

// Errorf logs a formatted error without aborting the caller.
func Errorf(format string, args ...any) {
	klog.Errorf(format, args...)
}
