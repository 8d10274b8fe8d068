package integrators

import "gonum.org/v1/gonum/spatial/r2"

// Verlet is velocity Verlet. It ignores the previous acceleration sample and
// is kept for side-by-side comparison with Beeman.
type Verlet struct{}

func NewVerlet() Verlet { return Verlet{} }

func (Verlet) Name() string { return "verlet" }

func (Verlet) Position(x, v, a, _ r2.Vec, dt float64) r2.Vec {
	return r2.Add(r2.Add(x, r2.Scale(dt, v)), r2.Scale(0.5*dt*dt, a))
}

func (Verlet) Velocity(v, a, _, aNext r2.Vec, dt float64) r2.Vec {
	return r2.Add(v, r2.Scale(0.5*dt, r2.Add(a, aNext)))
}
