package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/orbsim/internal/dynamo"
	"github.com/san-kum/orbsim/internal/sim"
)

// SweepPoint is the outcome of one satellite launch.
type SweepPoint struct {
	Speed        float64
	ClosestMars  float64
	ClosestDay   float64
	ClosestEarth float64
}

// LaunchBuilder returns a fresh system with a satellite launched at speed.
type LaunchBuilder func(speed float64) (*sim.System, error)

// LaunchSweep runs one simulation per launch speed, each for the given
// number of steps, and records the satellite's closest approach to Mars.
// Earth distances are ignored for the first day, which the satellite
// starts next to.
func LaunchSweep(build LaunchBuilder, speeds []float64, steps int) ([]SweepPoint, error) {
	results := make([]SweepPoint, 0, len(speeds))

	for _, v := range speeds {
		sys, err := build(v)
		if err != nil {
			return nil, fmt.Errorf("speed %g: %w", v, err)
		}

		p := SweepPoint{Speed: v, ClosestMars: math.Inf(1), ClosestEarth: math.Inf(1)}
		sys.AddDistanceSink(sim.DistanceFunc(func(days, toMars, toEarth float64) {
			if toMars < p.ClosestMars {
				p.ClosestMars = toMars
				p.ClosestDay = days
			}
			if days >= 1 && toEarth < p.ClosestEarth {
				p.ClosestEarth = toEarth
			}
		}))

		for i := 0; i < steps; i++ {
			if err := sys.Step(); err != nil {
				return nil, &dynamo.SimulationError{Step: i, Time: sys.Time(), Wrapped: err}
			}
		}
		results = append(results, p)
	}

	return results, nil
}

// Best returns the launch that came closest to Mars.
func Best(points []SweepPoint) (SweepPoint, bool) {
	if len(points) == 0 {
		return SweepPoint{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.ClosestMars < best.ClosestMars {
			best = p
		}
	}
	return best, true
}

// SweepToASCII plots closest Mars distance against launch speed.
func SweepToASCII(points []SweepPoint, width, height int) string {
	if len(points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minVal, maxVal := points[0].ClosestMars, points[0].ClosestMars
	for _, p := range points {
		minVal = math.Min(minVal, p.ClosestMars)
		maxVal = math.Max(maxVal, p.ClosestMars)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for i, p := range points {
		col := i * width / len(points)
		if col >= width {
			col = width - 1
		}
		row := height - 1 - int((p.ClosestMars-minVal)/(maxVal-minVal)*float64(height-1))
		if row >= 0 && row < height {
			canvas[row][col] = '•'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
