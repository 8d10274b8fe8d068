package metrics

import "github.com/san-kum/orbsim/internal/sim"

// OrbitCount is the number of completed orbits across all bodies at the
// last observed step.
type OrbitCount struct {
	name  string
	count int
}

func NewOrbitCount() *OrbitCount {
	return &OrbitCount{name: "orbits"}
}

func (o *OrbitCount) Name() string {
	return o.name
}

func (o *OrbitCount) Observe(s *sim.System) {
	n := 0
	for _, b := range s.Bodies() {
		n += len(b.Orbit.Periods)
	}
	o.count = n
}

func (o *OrbitCount) Value() float64 {
	return float64(o.count)
}

func (o *OrbitCount) Reset() {
	o.count = 0
}
