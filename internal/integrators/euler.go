package integrators

import "gonum.org/v1/gonum/spatial/r2"

// Euler is semi-implicit (kick-drift) Euler: the velocity is kicked with the
// current acceleration and the position drifts with the kicked velocity.
// First order, but symplectic, so energy error stays bounded.
type Euler struct{}

func NewEuler() Euler { return Euler{} }

func (Euler) Name() string { return "euler" }

func (Euler) Position(x, v, a, _ r2.Vec, dt float64) r2.Vec {
	return r2.Add(x, r2.Scale(dt, r2.Add(v, r2.Scale(dt, a))))
}

func (Euler) Velocity(v, a, _, _ r2.Vec, dt float64) r2.Vec {
	return r2.Add(v, r2.Scale(dt, a))
}
