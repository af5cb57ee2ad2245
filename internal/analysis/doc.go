// Package analysis provides diagnostics built on the transform engine.
//
//   - [Sweep]: recompute softargmax across a temperature grid
//   - [Entropy]: Shannon entropy of a probability vector
//   - [MaxIndex]: position of the largest value
//   - [SweepParallel]: the same sweep spread over a worker pool
//   - [FitTemperature]: grid search for a target expectation
//
// # Temperature Sweep
//
// A sweep shows how the weighted average slides from the plain mean toward
// the maximum as temperature drops:
//
//	points, _ := analysis.Sweep(v, cfg, analysis.Temperatures(0.05, 5, 50))
//	for _, p := range points {
//	    fmt.Println(p.Temperature, p.Expectation)
//	}
package analysis
