package gravity

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/body"
)

// Accumulator evaluates the net gravitational acceleration on one body.
type Accumulator interface {
	Name() string
	// Reset is called once per evaluation pass, after positions change.
	Reset(bodies []*body.Body) error
	// Acceleration may be called concurrently for different targets
	// between two Reset calls.
	Acceleration(target int, bodies []*body.Body) r2.Vec
}

// Direct sums the pull of every other body.
type Direct struct {
	G float64
}

func NewDirect(g float64) *Direct {
	return &Direct{G: g}
}

func (d *Direct) Name() string { return "direct" }

func (d *Direct) Reset([]*body.Body) error { return nil }

func (d *Direct) Acceleration(target int, bodies []*body.Body) r2.Vec {
	return r2.Scale(1/bodies[target].Mass, d.Force(target, bodies))
}

// Force returns the net force on bodies[target].
func (d *Direct) Force(target int, bodies []*body.Body) r2.Vec {
	b := bodies[target]
	var total r2.Vec

	for j, other := range bodies {
		if j == target {
			continue
		}
		rel := r2.Sub(other.Position, b.Position)
		r := r2.Norm(rel)
		total = r2.Add(total, r2.Scale(b.Mass*other.Mass/(r*r*r), rel))
	}

	return r2.Scale(d.G, total)
}

// Separation returns the distance between two bodies.
func Separation(a, b *body.Body) float64 {
	return r2.Norm(r2.Sub(a.Position, b.Position))
}

// CircularSpeed is the speed of a circular orbit of radius r around mass m.
func CircularSpeed(g, m, r float64) float64 {
	return math.Sqrt(g * m / r)
}
