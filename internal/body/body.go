// Package body holds the per-body physical state and the orbit detector
// that watches it.
package body

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/integrators"
)

// SunName marks the central body, which never takes part in orbit detection.
const SunName = "Sun"

var beeman = integrators.NewBeeman()

// Color is an RGB triple in [0, 1]. It is carried for renderers only.
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

type Body struct {
	Name     string
	Mass     float64
	Radius   float64
	Color    Color
	Position r2.Vec
	Velocity r2.Vec

	// Acceleration and PrevAcceleration are the two samples the Beeman
	// formulas need. Both start at zero and are primed with the true
	// gravitational acceleration before the first step.
	Acceleration     r2.Vec
	PrevAcceleration r2.Vec

	Orbit Orbit
}

func New(name string, mass float64, position, velocity r2.Vec) *Body {
	return &Body{
		Name:     name,
		Mass:     mass,
		Position: position,
		Velocity: velocity,
	}
}

func (b *Body) String() string {
	return fmt.Sprintf("name: %s, mass: %g, position: (%g, %g), velocity: (%g, %g), radius: %g, prev_acc: (%g, %g)",
		b.Name, b.Mass, b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y,
		b.Radius, b.PrevAcceleration.X, b.PrevAcceleration.Y)
}

// PredictNextPosition returns the Beeman position one timestep ahead. It
// does not modify the body.
func (b *Body) PredictNextPosition(dt float64) r2.Vec {
	return beeman.Position(b.Position, b.Velocity, b.Acceleration, b.PrevAcceleration, dt)
}

// CommitPosition must only be called once every body in the system has had
// its next position predicted.
func (b *Body) CommitPosition(p r2.Vec) {
	b.Position = p
}

// PredictNextVelocity needs the acceleration evaluated at the committed new
// positions and must run before CommitAcceleration.
func (b *Body) PredictNextVelocity(dt float64, next r2.Vec) r2.Vec {
	return beeman.Velocity(b.Velocity, b.Acceleration, b.PrevAcceleration, next, dt)
}

func (b *Body) CommitVelocity(v r2.Vec) {
	b.Velocity = v
}

// CommitAcceleration shifts the current sample into the previous slot.
func (b *Body) CommitAcceleration(next r2.Vec) {
	b.PrevAcceleration = b.Acceleration
	b.Acceleration = next
}

func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * r2.Norm2(b.Velocity)
}

// IsSun reports whether b is the central sentinel body.
func (b *Body) IsSun() bool {
	return b.Name == SunName
}

// IsValid reports whether position and velocity are finite.
func (b *Body) IsValid() bool {
	for _, v := range []float64{b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// CheckOrbit runs the orbit detector against the body's two acceleration
// samples. It returns the new average period in years when an orbit closed.
func (b *Body) CheckOrbit(t float64) (float64, bool) {
	return b.Orbit.Check(b.PrevAcceleration, b.Acceleration, t)
}

// Phase is the orbit detector state after the last acceleration update.
func (b *Body) Phase() Phase { return PhaseOf(b.Acceleration) }

// Snapshot is a value copy of the renderable part of a body.
type Snapshot struct {
	Name     string  `json:"name"`
	Mass     float64 `json:"mass"`
	Radius   float64 `json:"radius"`
	Color    Color   `json:"color"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	VX       float64 `json:"vx"`
	VY       float64 `json:"vy"`
	Orbits   int     `json:"orbits"`
	AvgYears float64 `json:"avg_period_years,omitempty"`
}

func (b *Body) Snapshot() Snapshot {
	s := Snapshot{
		Name:   b.Name,
		Mass:   b.Mass,
		Radius: b.Radius,
		Color:  b.Color,
		X:      b.Position.X,
		Y:      b.Position.Y,
		VX:     b.Velocity.X,
		VY:     b.Velocity.Y,
		Orbits: len(b.Orbit.Periods),
	}
	if avg, err := b.Orbit.AveragePeriod(); err == nil {
		s.AvgYears = avg
	}
	return s
}
