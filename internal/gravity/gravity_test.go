package gravity

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/body"
	"github.com/san-kum/orbsim/internal/dynamo"
)

func sunEarth() []*body.Body {
	return []*body.Body{
		body.New("Sun", 1.989e30, r2.Vec{}, r2.Vec{}),
		body.New("Earth", 5.972e24, r2.Vec{X: 1.496e11}, r2.Vec{Y: 29780}),
	}
}

func closeTo(a, b, rel float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= rel*math.Max(math.Abs(a), math.Abs(b))
}

func TestDirectTwoBody(t *testing.T) {
	bodies := sunEarth()
	acc := NewDirect(dynamo.G)

	earth := acc.Acceleration(1, bodies)
	want := -dynamo.G * 1.989e30 / (1.496e11 * 1.496e11)
	if !closeTo(earth.X, want, 1e-12) || earth.Y != 0 {
		t.Errorf("earth acceleration = %v, want (%g, 0)", earth, want)
	}

	sun := acc.Acceleration(0, bodies)
	wantSun := dynamo.G * 5.972e24 / (1.496e11 * 1.496e11)
	if !closeTo(sun.X, wantSun, 1e-12) || sun.Y != 0 {
		t.Errorf("sun acceleration = %v, want (%g, 0)", sun, wantSun)
	}
}

func TestDirectNewtonThirdLaw(t *testing.T) {
	bodies := []*body.Body{
		body.New("A", 3e24, r2.Vec{X: 1e9, Y: -2e9}, r2.Vec{}),
		body.New("B", 7e22, r2.Vec{X: -4e9, Y: 5e8}, r2.Vec{}),
		body.New("C", 1e26, r2.Vec{X: 2e9, Y: 3e9}, r2.Vec{}),
	}
	acc := NewDirect(dynamo.G)

	var net r2.Vec
	for i := range bodies {
		net = r2.Add(net, acc.Force(i, bodies))
	}

	scale := r2.Norm(acc.Force(2, bodies))
	if r2.Norm(net) > 1e-12*scale {
		t.Errorf("net internal force %v should vanish (scale %g)", net, scale)
	}
}

func TestDirectSuperposition(t *testing.T) {
	bodies := []*body.Body{
		body.New("Probe", 1, r2.Vec{}, r2.Vec{}),
		body.New("Left", 1e20, r2.Vec{X: -1e6}, r2.Vec{}),
		body.New("Right", 1e20, r2.Vec{X: 1e6}, r2.Vec{}),
	}

	a := NewDirect(dynamo.G).Acceleration(0, bodies)
	if math.Abs(a.X) > 1e-18 || a.Y != 0 {
		t.Errorf("symmetric pull should cancel, got %v", a)
	}
}

func TestDirectCoincidentIsUndefined(t *testing.T) {
	bodies := []*body.Body{
		body.New("A", 1, r2.Vec{X: 1}, r2.Vec{}),
		body.New("B", 1, r2.Vec{X: 1}, r2.Vec{}),
	}
	a := NewDirect(dynamo.G).Acceleration(0, bodies)
	if !math.IsNaN(a.X) && !math.IsInf(a.X, 0) {
		t.Errorf("coincident bodies should not produce a finite acceleration, got %v", a)
	}
}

func TestBarnesHutMatchesDirectSmallSystem(t *testing.T) {
	bodies := []*body.Body{
		body.New("Sun", 1.989e30, r2.Vec{}, r2.Vec{}),
		body.New("Venus", 4.867e24, r2.Vec{X: 1.082e11}, r2.Vec{}),
		body.New("Earth", 5.972e24, r2.Vec{X: -1.496e11, Y: 2e9}, r2.Vec{}),
		body.New("Mars", 6.39e23, r2.Vec{Y: 2.279e11}, r2.Vec{}),
	}

	direct := NewDirect(dynamo.G)
	bh := NewBarnesHut(dynamo.G, 0.5)
	if err := bh.Reset(bodies); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	for i := range bodies {
		want := direct.Acceleration(i, bodies)
		got := bh.Acceleration(i, bodies)
		if !closeTo(got.X, want.X, 1e-9) || !closeTo(got.Y, want.Y, 1e-9) {
			t.Errorf("%s: barnes-hut %v, direct %v", bodies[i].Name, got, want)
		}
	}
}

func TestBarnesHutTreeApproximation(t *testing.T) {
	bodies := []*body.Body{body.New("Sun", 1.989e30, r2.Vec{}, r2.Vec{})}
	for i := 0; i < 2*MinTreeBodies; i++ {
		angle := 2 * math.Pi * float64(i) / float64(2*MinTreeBodies)
		r := 1e11 + float64(i)*3e9
		bodies = append(bodies, body.New("rock", 1e22, r2.Vec{X: r * math.Cos(angle), Y: r * math.Sin(angle)}, r2.Vec{}))
	}

	direct := NewDirect(dynamo.G)
	bh := NewBarnesHut(dynamo.G, 0.3)
	if err := bh.Reset(bodies); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	for i := 1; i < len(bodies); i += 5 {
		want := direct.Acceleration(i, bodies)
		got := bh.Acceleration(i, bodies)
		if r2.Norm(r2.Sub(got, want)) > 1e-2*r2.Norm(want) {
			t.Errorf("body %d: barnes-hut %v too far from direct %v", i, got, want)
		}
	}
}

func TestBarnesHutResetTracksPositions(t *testing.T) {
	bodies := sunEarth()
	bh := NewBarnesHut(dynamo.G, 0.5)
	if err := bh.Reset(bodies); err != nil {
		t.Fatal(err)
	}
	before := bh.Acceleration(1, bodies)

	bodies[1].CommitPosition(r2.Vec{X: 2 * 1.496e11})
	if err := bh.Reset(bodies); err != nil {
		t.Fatal(err)
	}
	after := bh.Acceleration(1, bodies)

	if !closeTo(after.X, before.X/4, 1e-12) {
		t.Errorf("doubling distance should quarter the pull: before %v after %v", before, after)
	}
}

func TestTotalKinetic(t *testing.T) {
	bodies := []*body.Body{
		body.New("A", 2, r2.Vec{}, r2.Vec{X: 1}),
		body.New("B", 4, r2.Vec{X: 1}, r2.Vec{X: 3, Y: 4}),
	}
	if got := TotalKinetic(bodies); math.Abs(got-51) > 1e-12 {
		t.Errorf("TotalKinetic() = %v, want 51", got)
	}
}

func TestSymmetricPotential(t *testing.T) {
	const (
		m = 5.972e24
		d = 3.844e8
	)
	bodies := []*body.Body{
		body.New("A", m, r2.Vec{X: -d / 2}, r2.Vec{}),
		body.New("B", m, r2.Vec{X: d / 2}, r2.Vec{}),
	}

	got := TotalPotential(bodies, dynamo.G)
	want := -dynamo.G * m * m / d
	if got != want {
		t.Errorf("TotalPotential() = %v, want %v", got, want)
	}
}

func TestPotentialCountsEachPairOnce(t *testing.T) {
	bodies := []*body.Body{
		body.New("A", 1e20, r2.Vec{}, r2.Vec{}),
		body.New("B", 2e20, r2.Vec{X: 1e7}, r2.Vec{}),
		body.New("C", 3e20, r2.Vec{Y: 2e7}, r2.Vec{}),
	}

	want := 0.0
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			want -= dynamo.G * bodies[i].Mass * bodies[j].Mass / Separation(bodies[i], bodies[j])
		}
	}

	if got := TotalPotential(bodies, dynamo.G); !closeTo(got, want, 1e-12) {
		t.Errorf("TotalPotential() = %v, want %v", got, want)
	}
}

func TestTotalEnergyCircularOrbit(t *testing.T) {
	const (
		M = 1.989e30
		m = 5.972e24
		r = 1.496e11
	)
	v := CircularSpeed(dynamo.G, M, r)
	bodies := []*body.Body{
		body.New("Sun", M, r2.Vec{}, r2.Vec{}),
		body.New("Earth", m, r2.Vec{X: r}, r2.Vec{Y: v}),
	}

	// Virial: E = -G·M·m / 2r for a circular orbit around a fixed centre.
	want := -dynamo.G * M * m / (2 * r)
	if got := TotalEnergy(bodies, dynamo.G); !closeTo(got, want, 1e-12) {
		t.Errorf("TotalEnergy() = %v, want %v", got, want)
	}
}

func BenchmarkDirect(b *testing.B) {
	bodies := ring(64)
	acc := NewDirect(dynamo.G)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range bodies {
			acc.Acceleration(j, bodies)
		}
	}
}

func BenchmarkBarnesHut(b *testing.B) {
	bodies := ring(64)
	acc := NewBarnesHut(dynamo.G, 0.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = acc.Reset(bodies)
		for j := range bodies {
			acc.Acceleration(j, bodies)
		}
	}
}

func ring(n int) []*body.Body {
	bodies := make([]*body.Body, n)
	for i := range bodies {
		angle := 2 * math.Pi * float64(i) / float64(n)
		r := 1e11 * (1 + 0.1*float64(i%7))
		bodies[i] = body.New("b", 1e24, r2.Vec{X: r * math.Cos(angle), Y: r * math.Sin(angle)}, r2.Vec{})
	}
	return bodies
}
