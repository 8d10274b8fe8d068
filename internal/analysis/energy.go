package analysis

import "math"

// Band is the half-width, as a fraction of the mean, of the energy plot.
const Band = 0.0001

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variation returns 100*(v-mean)/mean for every sample.
func Variation(values []float64) []float64 {
	mean := Mean(values)
	out := make([]float64, len(values))
	if mean == 0 {
		return out
	}
	for i, v := range values {
		out[i] = 100 * (v - mean) / mean
	}
	return out
}

type EnergySummary struct {
	Samples      int
	Mean         float64
	Min          float64
	Max          float64
	Initial      float64
	Final        float64
	Drift        float64 // |final-initial| / |initial|
	MaxVariation float64 // largest |Variation|, in percent
}

func Summarize(energies []float64) EnergySummary {
	s := EnergySummary{Samples: len(energies)}
	if len(energies) == 0 {
		return s
	}

	s.Mean = Mean(energies)
	s.Min, s.Max = energies[0], energies[0]
	for _, e := range energies {
		s.Min = math.Min(s.Min, e)
		s.Max = math.Max(s.Max, e)
	}
	s.Initial = energies[0]
	s.Final = energies[len(energies)-1]
	if s.Initial != 0 {
		s.Drift = math.Abs(s.Final-s.Initial) / math.Abs(s.Initial)
	}
	for _, v := range Variation(energies) {
		s.MaxVariation = math.Max(s.MaxVariation, math.Abs(v))
	}
	return s
}

// PlotBounds is the range [mean-|mean|*Band, mean+|mean|*Band] that
// energy plots are drawn in.
func PlotBounds(energies []float64) (lo, hi float64) {
	mean := Mean(energies)
	w := math.Abs(mean) * Band
	return mean - w, mean + w
}

// Clamp limits every value to [lo, hi].
func Clamp(values []float64, lo, hi float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Max(lo, math.Min(hi, v))
	}
	return out
}
