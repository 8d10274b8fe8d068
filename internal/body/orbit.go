package body

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/dynamo"
)

// Phase is the sign state of the vertical acceleration component.
type Phase int

const (
	PhaseAtOrBelowZero Phase = iota
	PhaseAboveZero
)

func (p Phase) String() string {
	if p == PhaseAboveZero {
		return "above_zero"
	}
	return "at_or_below_zero"
}

// PhaseOf classifies an acceleration sample.
func PhaseOf(a r2.Vec) Phase {
	if a.Y > 0 {
		return PhaseAboveZero
	}
	return PhaseAtOrBelowZero
}

// Orbit records completed revolutions of one body.
//
// A revolution is counted when the y component of the acceleration goes
// from positive to zero or negative. That holds once per turn only for
// near-circular orbits centred close to the origin; eccentric or off-axis
// orbits can fire more than once or not at all.
type Orbit struct {
	// Periods are in years, oldest first.
	Periods []float64

	// LastTime is the simulation time of the previous closure, in seconds.
	LastTime float64
}

// Check fires on an above-zero to at-or-below-zero transition between prev
// and cur. On firing it records the elapsed time since the last closure and
// returns the running mean period.
func (o *Orbit) Check(prev, cur r2.Vec, t float64) (float64, bool) {
	if PhaseOf(prev) != PhaseAboveZero || PhaseOf(cur) != PhaseAtOrBelowZero {
		return 0, false
	}

	period := (t - o.LastTime) / dynamo.SecondsPerYear
	o.LastTime = t
	o.Periods = append(o.Periods, period)

	return mean(o.Periods), true
}

// AveragePeriod returns the mean recorded period in years.
func (o *Orbit) AveragePeriod() (float64, error) {
	if len(o.Periods) == 0 {
		return 0, dynamo.ErrEmptyHistory
	}
	return mean(o.Periods), nil
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
