package sim

import "github.com/san-kum/orbsim/internal/body"

// EnergySink receives one (time, total energy) sample per step. The time is
// the simulation time at the start of the step.
type EnergySink interface {
	OnEnergy(t, energy float64)
}

// OrbitSink receives the running average period, in years, each time a
// body's orbit detector fires.
type OrbitSink interface {
	OnOrbit(name string, avgPeriod float64)
}

// DistanceSink receives the satellite's distances, measured before each
// step, with the time in days.
type DistanceSink interface {
	OnDistance(days, toMars, toEarth float64)
}

// Observer is notified once a step has fully completed.
type Observer interface {
	OnStep(s *System)
}

// Metric summarises a run. It follows the same Observe/Value/Reset cycle
// as an Observer but reports a single scalar.
type Metric interface {
	Name() string
	Observe(s *System)
	Value() float64
	Reset()
}

type EnergyFunc func(t, energy float64)

func (f EnergyFunc) OnEnergy(t, energy float64) { f(t, energy) }

type OrbitFunc func(name string, avgPeriod float64)

func (f OrbitFunc) OnOrbit(name string, avgPeriod float64) { f(name, avgPeriod) }

type DistanceFunc func(days, toMars, toEarth float64)

func (f DistanceFunc) OnDistance(days, toMars, toEarth float64) { f(days, toMars, toEarth) }

type ObserverFunc func(s *System)

func (f ObserverFunc) OnStep(s *System) { f(s) }

// Frame is a read-only copy of the system at one instant.
type Frame struct {
	Time   float64         `json:"time"`
	Energy float64         `json:"energy"`
	Bodies []body.Snapshot `json:"bodies"`
}

type Result struct {
	Times         []float64
	Energies      []float64
	StepsTaken    int
	InitialEnergy float64
	FinalEnergy   float64
	EnergyDrift   float64
	Metrics       map[string]float64
}
