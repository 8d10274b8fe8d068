package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/orbsim/internal/dynamo"
	"github.com/san-kum/orbsim/internal/gravity"
	"github.com/san-kum/orbsim/internal/integrators"
	"github.com/san-kum/orbsim/internal/metrics"
	"github.com/san-kum/orbsim/internal/sim"
)

type Registry struct {
	schemes      map[string]func() integrators.Scheme
	accumulators map[string]func(g, theta float64) gravity.Accumulator
}

func NewRegistry() *Registry {
	r := &Registry{
		schemes:      make(map[string]func() integrators.Scheme),
		accumulators: make(map[string]func(g, theta float64) gravity.Accumulator),
	}

	r.schemes["beeman"] = func() integrators.Scheme { return integrators.NewBeeman() }
	r.schemes["verlet"] = func() integrators.Scheme { return integrators.NewVerlet() }
	r.schemes["euler"] = func() integrators.Scheme { return integrators.NewEuler() }

	r.accumulators["direct"] = func(g, _ float64) gravity.Accumulator { return gravity.NewDirect(g) }
	r.accumulators["barneshut"] = func(g, theta float64) gravity.Accumulator {
		return gravity.NewBarnesHut(g, theta)
	}

	return r
}

func (r *Registry) GetScheme(name string) (integrators.Scheme, error) {
	fn, ok := r.schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", dynamo.ErrUnknownScheme, name)
	}
	return fn(), nil
}

func (r *Registry) GetAccumulator(name string, g, theta float64) (gravity.Accumulator, error) {
	fn, ok := r.accumulators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", dynamo.ErrUnknownAccumulator, name)
	}
	return fn(g, theta), nil
}

func (r *Registry) ListSchemes() []string {
	return sortedKeys(r.schemes)
}

func (r *Registry) ListAccumulators() []string {
	return sortedKeys(r.accumulators)
}

// DefaultMetrics are attached to every experiment. escape is the radius
// beyond which a body counts as unbound.
func (r *Registry) DefaultMetrics(escape float64) []sim.Metric {
	return []sim.Metric{
		metrics.NewMeanEnergy(),
		metrics.NewEnergyDrift(),
		metrics.NewOrbitCount(),
		metrics.NewBoundedness(escape),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
