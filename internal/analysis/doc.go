// Package analysis turns the numeric logs of a run into summaries.
//
//   - [Variation], [Summarize]: energy variation about the mean
//   - [DominantPeriod]: strongest periodic component of a sampled signal
//   - [LyapunovExponent]: divergence of two nearby body systems
//   - [Apsides], [Portrait]: shape of a recorded orbit
//   - [LaunchSweep]: closest approach of a satellite across launch speeds
//
// # Energy Variation
//
// The integrator does not conserve energy exactly. The variation of each
// sample about the mean, in percent, is the usual way to judge a run:
//
//	pct := analysis.Variation(energies)
//	s := analysis.Summarize(energies)
//	fmt.Printf("max deviation %.2e%%\n", s.MaxVariation)
package analysis
