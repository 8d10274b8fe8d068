package sim

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/body"
	"github.com/san-kum/orbsim/internal/dynamo"
	"github.com/san-kum/orbsim/internal/gravity"
)

const (
	sunMass   = 1.989e30
	earthMass = 5.972e24
	au        = 1.496e11
)

func circular(name string, mass, r float64) *body.Body {
	return body.New(name, mass, r2.Vec{X: r}, r2.Vec{Y: gravity.CircularSpeed(dynamo.G, sunMass, r)})
}

func sunEarth() []*body.Body {
	return []*body.Body{
		body.New("Sun", sunMass, r2.Vec{}, r2.Vec{}),
		circular("Earth", earthMass, au),
	}
}

func innerPlanets() []*body.Body {
	return []*body.Body{
		body.New("Sun", sunMass, r2.Vec{}, r2.Vec{}),
		circular("Mercury", 3.285e23, 5.79e10),
		circular("Venus", 4.867e24, 1.082e11),
		circular("Earth", earthMass, au),
		circular("Mars", 6.39e23, 2.279e11),
	}
}

func keplerPeriodYears(m1, m2, r float64) float64 {
	return 2 * math.Pi * math.Sqrt(r*r*r/(dynamo.G*(m1+m2))) / dynamo.SecondsPerYear
}

func relClose(a, b, rel float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= rel*math.Max(math.Abs(a), math.Abs(b))
}

func vecClose(a, b r2.Vec, rel float64) bool {
	scale := math.Max(r2.Norm(a), r2.Norm(b))
	return r2.Norm(r2.Sub(a, b)) <= rel*scale
}

type orbitLog struct {
	names []string
	avgs  []float64
}

func (l *orbitLog) OnOrbit(name string, avg float64) {
	l.names = append(l.names, name)
	l.avgs = append(l.avgs, avg)
}

type distanceLog struct {
	days, toMars, toEarth []float64
}

func (l *distanceLog) OnDistance(days, toMars, toEarth float64) {
	l.days = append(l.days, days)
	l.toMars = append(l.toMars, toMars)
	l.toEarth = append(l.toEarth, toEarth)
}

// spyAccumulator records the positions it was shown on every call so tests
// can check that a pass only ever reads one snapshot.
type spyAccumulator struct {
	inner  *gravity.Direct
	passes [][][]r2.Vec
}

func (s *spyAccumulator) Name() string { return "spy" }

func (s *spyAccumulator) Reset([]*body.Body) error {
	s.passes = append(s.passes, nil)
	return nil
}

func (s *spyAccumulator) Acceleration(target int, bodies []*body.Body) r2.Vec {
	seen := make([]r2.Vec, len(bodies))
	for i, b := range bodies {
		seen[i] = b.Position
	}
	last := len(s.passes) - 1
	s.passes[last] = append(s.passes[last], seen)
	return s.inner.Acceleration(target, bodies)
}

type nanAccumulator struct{}

func (nanAccumulator) Name() string            { return "nan" }
func (nanAccumulator) Reset([]*body.Body) error { return nil }
func (nanAccumulator) Acceleration(int, []*body.Body) r2.Vec {
	return r2.Vec{X: math.NaN()}
}
