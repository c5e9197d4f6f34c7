// Package analysis characterizes headless runs of the lattice.
//
//   - [Summarize]: min, max, mean and extinction generation of a population series
//   - [DetectCycle]: first repeated lattice state, from per-generation hashes
//   - [DominantPeriod]: strongest oscillation period of a population series
//   - [DensitySweep]: long-run populations across a range of seed densities
//   - [Damage]: how a single flipped cell spreads through later generations
//
// # Periodic Patterns
//
// A hash cycle is exact; the spectral period is a hint that also works on
// runs too short to close a cycle:
//
//	if c, ok := analysis.DetectCycle(result.Hashes); ok {
//	    fmt.Println("period", c.Period)
//	}
package analysis
