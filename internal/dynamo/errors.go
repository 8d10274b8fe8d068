package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrDegenerateConfiguration indicates two bodies share a position, which
	// makes the force and potential energy sums divide by zero.
	ErrDegenerateConfiguration = errors.New("dynamo: degenerate configuration (coincident bodies)")

	// ErrEmptyHistory indicates an average orbital period was requested
	// before any orbit was detected.
	ErrEmptyHistory = errors.New("dynamo: no orbit recorded yet")

	// ErrInvalidState indicates a position or velocity became NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrNoBodies indicates a system was built without any body.
	ErrNoBodies = errors.New("dynamo: system has no bodies")

	ErrUnknownScheme      = errors.New("dynamo: unknown integration scheme")
	ErrUnknownAccumulator = errors.New("dynamo: unknown force accumulator")
)

// DegenerateError names the pair of bodies found at identical positions.
type DegenerateError struct {
	A, B string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%v: %q and %q", ErrDegenerateConfiguration, e.A, e.B)
}

func (e *DegenerateError) Unwrap() error {
	return ErrDegenerateConfiguration
}

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	Body    string
	Wrapped error
}

func (e *SimulationError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("step %d (t=%.0fs) body %s: %v", e.Step, e.Time, e.Body, e.Wrapped)
	}
	return fmt.Sprintf("step %d (t=%.0fs): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
