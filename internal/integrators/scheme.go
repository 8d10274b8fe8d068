// Package integrators holds the per-body update formulas used by the step
// driver. A scheme never reads forces itself: the driver hands it the current
// and previous accelerations and, for the velocity update, the acceleration
// evaluated at the already committed positions.
package integrators

import "gonum.org/v1/gonum/spatial/r2"

// Scheme advances one body by one timestep in two halves.
type Scheme interface {
	Name() string
	Position(x, v, a, aPrev r2.Vec, dt float64) r2.Vec
	Velocity(v, a, aPrev, aNext r2.Vec, dt float64) r2.Vec
}
