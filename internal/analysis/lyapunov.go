package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/dynamo"
	"github.com/san-kum/orbsim/internal/sim"
)

// Builder returns a fresh system. Two calls must produce identical systems.
type Builder func() (*sim.System, error)

// LyapunovExponent estimates the largest Lyapunov exponent, per year, by
// displacing the named body by delta metres along x and following both
// systems for the given number of steps. The separation is the distance
// between the two position vectors of all bodies; it is renormalised to
// delta whenever it grows past renorm times delta.
func LyapunovExponent(build Builder, name string, delta float64, steps int) (float64, error) {
	if !(delta > 0) || steps <= 0 {
		return 0, fmt.Errorf("%w: delta and steps must be positive", dynamo.ErrParameterBounds)
	}

	ref, err := build()
	if err != nil {
		return 0, err
	}
	pert, err := build()
	if err != nil {
		return 0, err
	}

	b, ok := pert.Body(name)
	if !ok {
		return 0, fmt.Errorf("%w: no body named %q", dynamo.ErrParameterBounds, name)
	}
	b.Position.X += delta

	const renorm = 1e3

	sumLog := 0.0
	for i := 0; i < steps; i++ {
		if err := ref.Step(); err != nil {
			return 0, err
		}
		if err := pert.Step(); err != nil {
			return 0, err
		}

		sep := Separation(ref, pert)
		if sep == 0 {
			continue
		}
		if sep > renorm*delta {
			sumLog += math.Log(sep / delta)
			rescale(ref, pert, delta/sep)
		}
	}

	// residual growth since the last renormalisation
	if sep := Separation(ref, pert); sep > 0 {
		sumLog += math.Log(sep / delta)
	}

	years := ref.Time() / dynamo.SecondsPerYear
	return sumLog / years, nil
}

// Separation is the phase-space distance between the positions of two
// systems with the same bodies in the same order.
func Separation(a, b *sim.System) float64 {
	sum := 0.0
	for i, ba := range a.Bodies() {
		sum += r2.Norm2(r2.Sub(b.Bodies()[i].Position, ba.Position))
	}
	return math.Sqrt(sum)
}

func rescale(ref, pert *sim.System, scale float64) {
	for i, rb := range ref.Bodies() {
		pb := pert.Bodies()[i]
		pb.Position = r2.Add(rb.Position, r2.Scale(scale, r2.Sub(pb.Position, rb.Position)))
		pb.Velocity = r2.Add(rb.Velocity, r2.Scale(scale, r2.Sub(pb.Velocity, rb.Velocity)))
	}
}
