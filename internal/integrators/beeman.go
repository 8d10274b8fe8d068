package integrators

import "gonum.org/v1/gonum/spatial/r2"

// Beeman is the default scheme. It keeps two acceleration samples per body
// and reaches third-order position accuracy with one force evaluation per
// step.
type Beeman struct{}

func NewBeeman() Beeman { return Beeman{} }

func (Beeman) Name() string { return "beeman" }

// Position returns x + v·dt + (4a − aPrev)·dt²/6.
func (Beeman) Position(x, v, a, aPrev r2.Vec, dt float64) r2.Vec {
	corr := r2.Sub(r2.Scale(4, a), aPrev)
	return r2.Add(r2.Add(x, r2.Scale(dt, v)), r2.Scale((1.0/6.0)*dt*dt, corr))
}

// Velocity returns v + (2aNext + 5a − aPrev)·dt/6.
func (Beeman) Velocity(v, a, aPrev, aNext r2.Vec, dt float64) r2.Vec {
	corr := r2.Sub(r2.Add(r2.Scale(2, aNext), r2.Scale(5, a)), aPrev)
	return r2.Add(v, r2.Scale((1.0/6.0)*dt, corr))
}
