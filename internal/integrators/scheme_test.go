package integrators

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// oscillate integrates x'' = -x in the plane from (1, 0) at rest.
func oscillate(s Scheme, dt float64, steps int) (r2.Vec, r2.Vec) {
	acc := func(x r2.Vec) r2.Vec { return r2.Scale(-1, x) }

	x := r2.Vec{X: 1}
	v := r2.Vec{}
	a := acc(x)
	aPrev := a

	for i := 0; i < steps; i++ {
		x = s.Position(x, v, a, aPrev, dt)
		aNext := acc(x)
		v = s.Velocity(v, a, aPrev, aNext, dt)
		aPrev, a = a, aNext
	}
	return x, v
}

func TestSchemeAccuracy(t *testing.T) {
	tests := []struct {
		scheme Scheme
		tol    float64
	}{
		{NewBeeman(), 1e-4},
		{NewVerlet(), 1e-4},
		{NewEuler(), 2e-2},
	}

	dt := 0.01
	steps := 100

	for _, tt := range tests {
		t.Run(tt.scheme.Name(), func(t *testing.T) {
			x, v := oscillate(tt.scheme, dt, steps)

			expectedX := math.Cos(float64(steps) * dt)
			expectedV := -math.Sin(float64(steps) * dt)

			if math.Abs(x.X-expectedX) > tt.tol {
				t.Errorf("position error too large: got %.6f, expected %.6f", x.X, expectedX)
			}
			if math.Abs(v.X-expectedV) > tt.tol {
				t.Errorf("velocity error too large: got %.6f, expected %.6f", v.X, expectedV)
			}
			if x.Y != 0 || v.Y != 0 {
				t.Errorf("motion left the x axis: x=%v v=%v", x, v)
			}
		})
	}
}

func TestBeemanPositionFormula(t *testing.T) {
	x := r2.Vec{X: 1.5, Y: -2}
	v := r2.Vec{X: 0.25, Y: 3}
	a := r2.Vec{X: -1, Y: 0.5}
	aPrev := r2.Vec{X: 2, Y: 1}
	dt := 0.1

	got := NewBeeman().Position(x, v, a, aPrev, dt)
	want := r2.Vec{
		X: 1.5 + 0.25*dt + (4*-1.0-2)*dt*dt/6,
		Y: -2 + 3*dt + (4*0.5-1)*dt*dt/6,
	}

	if math.Abs(got.X-want.X) > 1e-15 || math.Abs(got.Y-want.Y) > 1e-15 {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestBeemanVelocityFormula(t *testing.T) {
	v := r2.Vec{X: 0.25, Y: 3}
	a := r2.Vec{X: -1, Y: 0.5}
	aPrev := r2.Vec{X: 2, Y: 1}
	aNext := r2.Vec{X: 0.5, Y: -0.5}
	dt := 0.1

	got := NewBeeman().Velocity(v, a, aPrev, aNext, dt)
	want := r2.Vec{
		X: 0.25 + (2*0.5+5*-1.0-2)*dt/6,
		Y: 3 + (2*-0.5+5*0.5-1)*dt/6,
	}

	if math.Abs(got.X-want.X) > 1e-15 || math.Abs(got.Y-want.Y) > 1e-15 {
		t.Errorf("Velocity() = %v, want %v", got, want)
	}
}

func TestBeemanDeterministic(t *testing.T) {
	s := NewBeeman()
	x := r2.Vec{X: 1.496e11}
	v := r2.Vec{Y: 29780}
	a := r2.Vec{X: -5.93e-3}
	aPrev := r2.Vec{X: -5.93e-3, Y: 1e-5}
	aNext := r2.Vec{X: -5.92e-3, Y: -3e-4}

	p1, p2 := s.Position(x, v, a, aPrev, 86400), s.Position(x, v, a, aPrev, 86400)
	if p1 != p2 {
		t.Errorf("Position not deterministic: %v vs %v", p1, p2)
	}

	v1, v2 := s.Velocity(v, a, aPrev, aNext, 86400), s.Velocity(v, a, aPrev, aNext, 86400)
	if v1 != v2 {
		t.Errorf("Velocity not deterministic: %v vs %v", v1, v2)
	}
}

func TestVerletIgnoresPreviousAcceleration(t *testing.T) {
	s := NewVerlet()
	x := r2.Vec{X: 1}
	v := r2.Vec{Y: 1}
	a := r2.Vec{X: -1}

	if s.Position(x, v, a, r2.Vec{}, 0.1) != s.Position(x, v, a, r2.Vec{X: 9, Y: 9}, 0.1) {
		t.Error("Verlet position depends on previous acceleration")
	}
	if s.Velocity(v, a, r2.Vec{}, a, 0.1) != s.Velocity(v, a, r2.Vec{X: 9}, a, 0.1) {
		t.Error("Verlet velocity depends on previous acceleration")
	}
}

func TestEulerKickDrift(t *testing.T) {
	x := r2.Vec{X: 1}
	v := r2.Vec{Y: 2}
	a := r2.Vec{X: -4}
	dt := 0.5

	s := NewEuler()
	v1 := s.Velocity(v, a, r2.Vec{}, r2.Vec{X: 99}, dt)
	if v1 != (r2.Vec{X: -2, Y: 2}) {
		t.Errorf("Velocity() = %v", v1)
	}
	// drift uses the kicked velocity
	if got, want := s.Position(x, v, a, r2.Vec{}, dt), r2.Add(x, r2.Scale(dt, v1)); got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}
