package body

import (
	"fmt"
	"math"

	"github.com/san-kum/orbsim/internal/dynamo"
)

// Validate rejects sets the integrator cannot start from: non-positive or
// non-finite masses, duplicate names, non-finite state, or two bodies at the
// same position.
func Validate(bodies []*Body) error {
	if len(bodies) == 0 {
		return dynamo.ErrNoBodies
	}

	seen := make(map[string]bool, len(bodies))
	for i, b := range bodies {
		if err := validateOne(b); err != nil {
			return err
		}
		if seen[b.Name] {
			return fmt.Errorf("%w: duplicate body name %q", dynamo.ErrParameterBounds, b.Name)
		}
		seen[b.Name] = true

		for _, other := range bodies[:i] {
			if other.Position == b.Position {
				return &dynamo.DegenerateError{A: other.Name, B: b.Name}
			}
		}
	}
	return nil
}

// ValidateJoin checks that b can be appended to an already valid set.
func ValidateJoin(bodies []*Body, b *Body) error {
	if err := validateOne(b); err != nil {
		return err
	}
	for _, other := range bodies {
		if other.Name == b.Name {
			return fmt.Errorf("%w: duplicate body name %q", dynamo.ErrParameterBounds, b.Name)
		}
		if other.Position == b.Position {
			return &dynamo.DegenerateError{A: other.Name, B: b.Name}
		}
	}
	return nil
}

func validateOne(b *Body) error {
	if b == nil {
		return fmt.Errorf("%w: nil body", dynamo.ErrParameterBounds)
	}
	if b.Name == "" {
		return fmt.Errorf("%w: body without a name", dynamo.ErrParameterBounds)
	}
	if !(b.Mass > 0) || math.IsInf(b.Mass, 0) {
		return fmt.Errorf("%w: mass of %s must be positive, got %g", dynamo.ErrParameterBounds, b.Name, b.Mass)
	}
	if !b.IsValid() {
		return fmt.Errorf("%w: %s", dynamo.ErrInvalidState, b.Name)
	}
	return nil
}
