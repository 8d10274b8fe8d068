package analysis

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT returns the n/2+1 non-negative frequency coefficients of real data.
func FFT(data []float64) []complex128 {
	if len(data) == 0 {
		return nil
	}
	return fourier.NewFFT(len(data)).Coefficients(nil, data)
}

// PowerSpectrum is the magnitude of the first n/2 FFT bins of data padded
// to a power of two.
func PowerSpectrum(data []float64) []float64 {
	padded := PadPow2(data)
	coeffs := FFT(padded)
	ps := make([]float64, len(padded)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// PadPow2 zero-pads data to the next power of two.
func PadPow2(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n <<= 1
	}
	out := make([]float64, n)
	copy(out, data)
	return out
}

// DominantPeriod returns the period, in the unit of dt, of the strongest
// non-constant component of samples taken every dt. It returns 0 when
// there are too few samples.
func DominantPeriod(samples []float64, dt float64) float64 {
	if len(samples) < 4 {
		return 0
	}

	mean := Mean(samples)
	centred := make([]float64, len(samples))
	for i, v := range samples {
		centred[i] = v - mean
	}

	padded := PadPow2(centred)
	ps := PowerSpectrum(padded)

	best := 0
	for k := 1; k < len(ps); k++ {
		if best == 0 || ps[k] > ps[best] {
			best = k
		}
	}
	if best == 0 || ps[best] == 0 {
		return 0
	}

	// parabolic refinement of the peak bin
	peak := float64(best)
	if best > 1 && best < len(ps)-1 {
		a, b, c := ps[best-1], ps[best], ps[best+1]
		if d := a - 2*b + c; d != 0 {
			peak += 0.5 * (a - c) / d
		}
	}
	return float64(len(padded)) * dt / peak
}
