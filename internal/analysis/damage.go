package analysis

import "github.com/san-kum/cubelife/internal/grid"

// Damage flips the cell at (x,y,z) in a copy of g and runs both lattices for
// ticks generations. It returns the number of differing cells after each
// tick. g itself is not modified.
//
// Damage that dies out means the pattern absorbs small perturbations; damage
// that keeps growing is the lattice analogue of a positive Lyapunov exponent.
func Damage(g *grid.Grid, x, y, z, ticks int) []int {
	a := g.Clone()
	b := g.Clone()
	b.Set(x, y, z, !b.Cell(x, y, z).Alive)

	out := make([]int, 0, ticks)
	for i := 0; i < ticks; i++ {
		a.Tick()
		b.Tick()
		out = append(out, Hamming(a, b))
	}
	return out
}

// Hamming counts cells whose alive state differs. Both lattices must have the
// same side.
func Hamming(a, b *grid.Grid) int {
	d := 0
	a.Each(func(x, y, z int, c grid.Cell) {
		if c.Alive != b.Cell(x, y, z).Alive {
			d++
		}
	})
	return d
}
