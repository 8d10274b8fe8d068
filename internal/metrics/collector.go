package metrics

import (
	"math"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/orbsim/internal/sim"
)

// Collector exports a running system to Prometheus. Register it on a
// System as an Observer, EnergySink and OrbitSink.
type Collector struct {
	simTime     prometheus.Gauge
	energy      prometheus.Gauge
	drift       prometheus.Gauge
	steps       prometheus.Counter
	orbits      *prometheus.CounterVec
	period      *prometheus.GaugeVec
	distance    *prometheus.GaugeVec
	initial     float64
	haveInitial bool
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		simTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orbsim_time_seconds",
			Help: "Simulation time after the last completed step",
		}),
		energy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orbsim_total_energy_joules",
			Help: "Total kinetic plus potential energy",
		}),
		drift: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orbsim_energy_drift_ratio",
			Help: "Relative deviation of the total energy from its first sample",
		}),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orbsim_steps_total",
			Help: "Total number of completed steps",
		}),
		orbits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orbsim_orbits_total",
				Help: "Completed orbits per body",
			},
			[]string{"body"},
		),
		period: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "orbsim_orbital_period_years",
				Help: "Running average orbital period per body",
			},
			[]string{"body"},
		),
		distance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "orbsim_satellite_distance_meters",
				Help: "Distance from the satellite to a probe target",
			},
			[]string{"target"},
		),
	}

	reg.MustRegister(c.simTime, c.energy, c.drift, c.steps, c.orbits, c.period, c.distance)
	return c
}

func (c *Collector) OnStep(s *sim.System) {
	c.simTime.Set(s.Time())
	c.steps.Inc()
}

func (c *Collector) OnEnergy(_, energy float64) {
	c.energy.Set(energy)
	if !c.haveInitial {
		c.initial = energy
		c.haveInitial = true
	}
	if c.initial != 0 {
		c.drift.Set(math.Abs((energy - c.initial) / c.initial))
	}
}

func (c *Collector) OnOrbit(name string, avgPeriod float64) {
	c.orbits.WithLabelValues(name).Inc()
	c.period.WithLabelValues(name).Set(avgPeriod)
}

func (c *Collector) OnDistance(_, toMars, toEarth float64) {
	c.distance.WithLabelValues("mars").Set(toMars)
	c.distance.WithLabelValues("earth").Set(toEarth)
}

// Attach registers c on every hook s offers.
func (c *Collector) Attach(s *sim.System) {
	s.AddObserver(c)
	s.AddEnergySink(c)
	s.AddOrbitSink(c)
	s.AddDistanceSink(c)
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
