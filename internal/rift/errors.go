package rift

import "errors"

// Configuration and call-argument errors. Everything here is fatal for
// the request that raised it; the extender never retries internally.
var (
	// ErrDipRange indicates a fault dip outside the open interval (0, 90) degrees.
	ErrDipRange = errors.New("rift: fault dip must lie strictly between 0 and 90 degrees")

	// ErrExtensionRate indicates a non-positive extension rate.
	ErrExtensionRate = errors.New("rift: extension rate must be positive")

	// ErrDetachmentDepth indicates a non-positive detachment depth.
	ErrDetachmentDepth = errors.New("rift: detachment depth must be positive")

	// ErrFaultLocation indicates a fault trace outside the grid x-extent.
	ErrFaultLocation = errors.New("rift: fault location outside grid extent")

	// ErrMissingField indicates a required named field absent from the grid.
	ErrMissingField = errors.New("rift: required field not present on grid")

	// ErrFieldLength indicates a field whose length does not match the node count.
	ErrFieldLength = errors.New("rift: field length does not match node count")

	// ErrTimestep indicates a non-positive or non-finite dt passed to RunOneStep.
	ErrTimestep = errors.New("rift: timestep must be positive and finite")
)

// ConfigError wraps a sentinel error with the offending parameter.
type ConfigError struct {
	Param   string
	Detail  string
	Wrapped error
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return e.Wrapped.Error() + " (" + e.Param + ")"
	}
	return e.Wrapped.Error() + " (" + e.Param + ": " + e.Detail + ")"
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
