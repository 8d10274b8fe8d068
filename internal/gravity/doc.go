// Package gravity computes Newtonian accelerations and the energy budget of
// a planar body system.
//
// Two accumulators implement [Accumulator]:
//
//   - [Direct]: exact pairwise sum, O(n) per body
//   - [BarnesHut]: quadtree approximation from gonum's spatial/barneshut
//
// Both expect the body positions to stay fixed between [Accumulator.Reset]
// and the last [Accumulator.Acceleration] call of a pass. Coincident bodies
// are a precondition violation and produce Inf or NaN.
package gravity
