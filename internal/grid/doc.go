// Package grid implements the cubic cell lattice and its neighbor-counting rule.
//
// The lattice holds two fixed arenas of cells. [Grid.Tick] reads every cell of
// the current arena, writes the next generation into the scratch arena and then
// flips which arena is current, so a generation is always computed from a single
// consistent snapshot:
//
//   - a live cell survives with 5, 6 or 7 live neighbors
//   - a dead cell is born with exactly 6 live neighbors
//
// Neighbors outside [0,N) count as dead; the lattice does not wrap.
//
// # Example
//
//	g, _ := grid.New(10)
//	g.Seed(rand.New(rand.NewSource(1)), grid.DefaultDensity)
//	g.Tick()
//	fmt.Println(g.Population())
//
// # Thread Safety
//
// Grid is NOT thread-safe. It is owned by the frame loop that ticks it.
package grid
