// Package sim drives a body system forward in time.
//
// One [System.Step] evaluates every acceleration on an unmodified position
// snapshot, predicts all next positions, commits them together, evaluates
// the accelerations at the new positions, and only then updates velocities
// and acceleration history. No body ever sees another body's position from
// the middle of a step.
package sim

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/body"
	"github.com/san-kum/orbsim/internal/dynamo"
	"github.com/san-kum/orbsim/internal/gravity"
	"github.com/san-kum/orbsim/internal/integrators"
)

// Default indices of the bodies the satellite probe measures against. They
// match the Sun, Mercury, Venus, Earth, Mars ordering of the presets.
const (
	DefaultEarthIndex = 3
	DefaultMarsIndex  = 4
)

type System struct {
	bodies []*body.Body
	dt     float64
	time   float64
	energy float64
	steps  int
	primed bool

	g        float64
	scheme   integrators.Scheme
	acc      gravity.Accumulator
	workers  int
	validate bool

	probe      *probe
	earthIndex int
	marsIndex  int

	nextPos []r2.Vec
	nextAcc []r2.Vec

	energySinks   []EnergySink
	orbitSinks    []OrbitSink
	distanceSinks []DistanceSink
	observers     []Observer
	metrics       []Metric
}

type Option func(*System)

// WithGravity sets the gravitational constant used for energy accounting
// and by the default accumulator.
func WithGravity(g float64) Option {
	return func(s *System) { s.g = g }
}

func WithScheme(scheme integrators.Scheme) Option {
	return func(s *System) { s.scheme = scheme }
}

func WithAccumulator(acc gravity.Accumulator) Option {
	return func(s *System) { s.acc = acc }
}

// WithWorkers spreads the acceleration passes over n goroutines.
func WithWorkers(n int) Option {
	return func(s *System) { s.workers = n }
}

// WithValidation makes Run stop with ErrInvalidState as soon as a body's
// position or velocity stops being finite.
func WithValidation(on bool) Option {
	return func(s *System) { s.validate = on }
}

// WithProbeIndices sets which bodies the satellite distances are measured
// against.
func WithProbeIndices(earth, mars int) Option {
	return func(s *System) {
		s.earthIndex = earth
		s.marsIndex = mars
	}
}

// New builds a system from bodies in the given order. The slice is copied;
// the bodies themselves are not.
func New(bodies []*body.Body, dt float64, opts ...Option) (*System, error) {
	if err := body.Validate(bodies); err != nil {
		return nil, err
	}
	if !(dt > 0) {
		return nil, fmt.Errorf("%w: timestep must be positive, got %g", dynamo.ErrParameterBounds, dt)
	}

	s := &System{
		bodies:     append([]*body.Body(nil), bodies...),
		dt:         dt,
		g:          dynamo.G,
		scheme:     integrators.NewBeeman(),
		workers:    1,
		validate:   true,
		earthIndex: DefaultEarthIndex,
		marsIndex:  DefaultMarsIndex,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.acc == nil {
		s.acc = gravity.NewDirect(s.g)
	}

	s.nextPos = make([]r2.Vec, len(s.bodies))
	s.nextAcc = make([]r2.Vec, len(s.bodies))
	s.energy = gravity.TotalEnergy(s.bodies, s.g)

	return s, nil
}

func (s *System) AddEnergySink(sink EnergySink)     { s.energySinks = append(s.energySinks, sink) }
func (s *System) AddOrbitSink(sink OrbitSink)       { s.orbitSinks = append(s.orbitSinks, sink) }
func (s *System) AddDistanceSink(sink DistanceSink) { s.distanceSinks = append(s.distanceSinks, sink) }
func (s *System) AddObserver(o Observer)            { s.observers = append(s.observers, o) }
func (s *System) AddMetric(m Metric)                { s.metrics = append(s.metrics, m) }

// Bodies returns the live bodies in insertion order. Callers must not
// mutate them while a step is running.
func (s *System) Bodies() []*body.Body { return s.bodies }

func (s *System) Body(name string) (*body.Body, bool) {
	for _, b := range s.bodies {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

func (s *System) Time() float64     { return s.time }
func (s *System) Timestep() float64 { return s.dt }
func (s *System) Steps() int        { return s.steps }
func (s *System) Gravity() float64  { return s.g }

// TotalEnergy is the kinetic plus potential energy after the last step. It
// is never corrected; drift is left for callers to judge.
func (s *System) TotalEnergy() float64 { return s.energy }

func (s *System) Scheme() integrators.Scheme        { return s.scheme }
func (s *System) Accumulator() gravity.Accumulator { return s.acc }

func (s *System) Snapshot() Frame {
	f := Frame{
		Time:   s.time,
		Energy: s.energy,
		Bodies: make([]body.Snapshot, len(s.bodies)),
	}
	for i, b := range s.bodies {
		f.Bodies[i] = b.Snapshot()
	}
	return f
}

// AddBody appends b. Once the system has been primed the new body gets its
// previous acceleration from the current configuration right away.
func (s *System) AddBody(b *body.Body) error {
	if err := body.ValidateJoin(s.bodies, b); err != nil {
		return err
	}

	s.bodies = append(s.bodies, b)
	s.nextPos = append(s.nextPos, r2.Vec{})
	s.nextAcc = append(s.nextAcc, r2.Vec{})

	if s.primed {
		if err := s.acc.Reset(s.bodies); err != nil {
			return err
		}
		b.PrevAcceleration = s.acc.Acceleration(len(s.bodies)-1, s.bodies)
	}
	s.energy = gravity.TotalEnergy(s.bodies, s.g)
	return nil
}

// AddSatellite appends b and starts reporting its distance to the bodies at
// the probe indices before every step.
func (s *System) AddSatellite(b *body.Body) error {
	if s.earthIndex < 0 || s.marsIndex < 0 ||
		s.earthIndex >= len(s.bodies) || s.marsIndex >= len(s.bodies) {
		return fmt.Errorf("%w: probe indices earth=%d mars=%d with %d bodies",
			dynamo.ErrParameterBounds, s.earthIndex, s.marsIndex, len(s.bodies))
	}
	if err := s.AddBody(b); err != nil {
		return err
	}
	s.probe = &probe{satellite: len(s.bodies) - 1, earth: s.earthIndex, mars: s.marsIndex}
	return nil
}

// Step advances every body by one timestep.
func (s *System) Step() error {
	if s.time == 0 && !s.primed {
		if err := s.prime(); err != nil {
			return err
		}
	}

	if s.probe != nil {
		days := s.time / dynamo.SecondsPerDay
		toMars, toEarth := s.probe.measure(s.bodies)
		for _, sink := range s.distanceSinks {
			sink.OnDistance(days, toMars, toEarth)
		}
	}

	if err := s.acc.Reset(s.bodies); err != nil {
		return fmt.Errorf("position pass: %w", err)
	}
	s.each(func(i int) {
		b := s.bodies[i]
		b.Acceleration = s.acc.Acceleration(i, s.bodies)
		s.nextPos[i] = s.scheme.Position(b.Position, b.Velocity, b.Acceleration, b.PrevAcceleration, s.dt)
	})
	for i, b := range s.bodies {
		b.CommitPosition(s.nextPos[i])
	}

	if err := s.acc.Reset(s.bodies); err != nil {
		return fmt.Errorf("velocity pass: %w", err)
	}
	s.each(func(i int) {
		s.nextAcc[i] = s.acc.Acceleration(i, s.bodies)
	})
	for i, b := range s.bodies {
		next := s.nextAcc[i]
		b.CommitVelocity(s.scheme.Velocity(b.Velocity, b.Acceleration, b.PrevAcceleration, next, s.dt))
		b.CommitAcceleration(next)

		if b.IsSun() {
			continue
		}
		if avg, ok := b.CheckOrbit(s.time); ok {
			for _, sink := range s.orbitSinks {
				sink.OnOrbit(b.Name, avg)
			}
		}
	}

	s.energy = gravity.TotalEnergy(s.bodies, s.g)
	for _, sink := range s.energySinks {
		sink.OnEnergy(s.time, s.energy)
	}

	s.time += s.dt
	s.steps++

	for _, o := range s.observers {
		o.OnStep(s)
	}
	return nil
}

// prime fills PrevAcceleration with the acceleration of the initial
// configuration so the first step has two samples to work with.
func (s *System) prime() error {
	if err := s.acc.Reset(s.bodies); err != nil {
		return fmt.Errorf("prime accelerations: %w", err)
	}
	s.each(func(i int) {
		s.nextAcc[i] = s.acc.Acceleration(i, s.bodies)
	})
	for i, b := range s.bodies {
		b.PrevAcceleration = s.nextAcc[i]
	}
	s.primed = true
	return nil
}

func (s *System) each(fn func(i int)) {
	dynamo.ParallelFor(len(s.bodies), s.workers, 4, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

func (s *System) invalidBody() (string, bool) {
	for _, b := range s.bodies {
		if !b.IsValid() {
			return b.Name, true
		}
	}
	return "", false
}

type probe struct {
	satellite, earth, mars int
}

func (p *probe) measure(bodies []*body.Body) (toMars, toEarth float64) {
	sat := bodies[p.satellite]
	return gravity.Separation(sat, bodies[p.mars]), gravity.Separation(sat, bodies[p.earth])
}
