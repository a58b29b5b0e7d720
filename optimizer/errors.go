package optimizer

import "errors"

// Error kinds. The driver never swallows these; they propagate and abort
// the run, with the exception of the NSGA-III normalization fallback which
// recovers locally and only logs a warning.
var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrRuntime       = errors.New("runtime error")
	ErrNumerical     = errors.New("numerical error")
)
