package metrics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/sim"
)

// Boundedness is the fraction of steps in which every body stayed within
// radius of the origin. Escaping bodies pull it below one.
type Boundedness struct {
	name       string
	radius     float64
	violations int
	samples    int
}

func NewBoundedness(radius float64) *Boundedness {
	return &Boundedness{
		name:   "bounded",
		radius: radius,
	}
}

func (b *Boundedness) Name() string {
	return b.name
}

func (b *Boundedness) Observe(s *sim.System) {
	b.samples++
	for _, body := range s.Bodies() {
		if r2.Norm(body.Position) > b.radius {
			b.violations++
			break
		}
	}
}

func (b *Boundedness) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Boundedness) Reset() {
	b.violations = 0
	b.samples = 0
}
