package gravity

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/barneshut"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/body"
)

// MinTreeBodies is the body count below which BarnesHut skips building the
// quadtree and lets the plane sum every pair.
const MinTreeBodies = 16

// BarnesHut approximates distant groups of bodies by their centre of mass.
// Theta is the opening angle; zero gives the exact pairwise sum.
type BarnesHut struct {
	G     float64
	Theta float64

	plane     barneshut.Plane
	particles []barneshut.Particle2
}

func NewBarnesHut(g, theta float64) *BarnesHut {
	return &BarnesHut{G: g, Theta: theta}
}

func (bh *BarnesHut) Name() string { return "barneshut" }

type particle struct {
	b *body.Body
}

func (p *particle) Coord2() r2.Vec { return p.b.Position }
func (p *particle) Mass() float64  { return p.b.Mass }

func (bh *BarnesHut) Reset(bodies []*body.Body) error {
	if len(bh.particles) != len(bodies) {
		bh.particles = make([]barneshut.Particle2, len(bodies))
	}
	for i, b := range bodies {
		p, ok := bh.particles[i].(*particle)
		if !ok {
			p = &particle{}
			bh.particles[i] = p
		}
		p.b = b
	}

	bh.plane = barneshut.Plane{Particles: bh.particles}
	if len(bodies) < MinTreeBodies {
		return nil
	}
	if err := bh.plane.Reset(); err != nil {
		return fmt.Errorf("barnes-hut tree: %w", err)
	}
	return nil
}

func (bh *BarnesHut) Acceleration(target int, bodies []*body.Body) r2.Vec {
	f := bh.plane.ForceOn(bh.particles[target], bh.Theta, barneshut.Gravity2)
	return r2.Scale(bh.G/bodies[target].Mass, f)
}
