// Package dynamo provides core primitives shared by the orbit simulation.
//
// The package defines the physical constants, the error taxonomy, and the
// small concurrency helpers used by the step driver:
//
//   - [G], [SecondsPerYear], [SecondsPerDay]: unit constants
//   - [ErrDegenerateConfiguration]: coincident bodies, fatal
//   - [ErrEmptyHistory]: average period requested before any orbit
//   - [SimulationError]: wraps an error with step/time context
//   - [ParallelFor]: chunked fan-out over a read-only snapshot
//
// # Example
//
//	bodies, _ := catalog.Load("inner.csv", dynamo.G, dynamo.SolarMass)
//	sys, _ := sim.New(bodies, dynamo.SecondsPerDay)
//	res, _ := sys.Run(ctx, 730)
//
// # Thread Safety
//
// Nothing in the simulation core is safe for concurrent mutation. The only
// parallel sections are the read-only acceleration passes driven by
// [ParallelFor].
package dynamo
