package grid

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

const (
	DefaultSize    = 10
	DefaultDensity = 0.2

	// Survival and birth thresholds of the transition rule.
	SurviveMin = 5
	SurviveMax = 7
	BirthCount = 6
)

// Cell is one lattice site. Alive is the simulation state; Size is the eased
// visual proxy in [0,1] and is never touched by the rule.
type Cell struct {
	Alive bool
	Size  float64
}

type Grid struct {
	n          int
	arenas     [2][]Cell
	cur        int
	generation uint64
}

func New(n int) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	cells := n * n * n
	return &Grid{
		n:      n,
		arenas: [2][]Cell{make([]Cell, cells), make([]Cell, cells)},
	}, nil
}

// Seed makes every cell alive with the given probability. Live cells start at
// full size and dead cells at zero so the first frame shows the seeded state.
func (g *Grid) Seed(rng *rand.Rand, density float64) {
	cells := g.arenas[g.cur]
	for i := range cells {
		alive := rng.Float64() < density
		size := 0.0
		if alive {
			size = 1.0
		}
		cells[i] = Cell{Alive: alive, Size: size}
	}
	g.generation = 0
}

// Clear kills every cell and zeroes every size.
func (g *Grid) Clear() {
	cells := g.arenas[g.cur]
	for i := range cells {
		cells[i] = Cell{}
	}
	g.generation = 0
}

func (g *Grid) Size() int          { return g.n }
func (g *Grid) Generation() uint64 { return g.generation }

func (g *Grid) index(x, y, z int) int { return (x*g.n+y)*g.n + z }

func (g *Grid) inBounds(x, y, z int) bool {
	return x >= 0 && x < g.n && y >= 0 && y < g.n && z >= 0 && z < g.n
}

func (g *Grid) Cell(x, y, z int) Cell {
	return g.arenas[g.cur][g.index(x, y, z)]
}

// Set overwrites a cell of the current generation. It is meant for building a
// lattice before the simulation starts; once running only Tick changes Alive.
func (g *Grid) Set(x, y, z int, alive bool) {
	size := 0.0
	if alive {
		size = 1.0
	}
	g.arenas[g.cur][g.index(x, y, z)] = Cell{Alive: alive, Size: size}
}

// NeighborCount returns the number of live cells among the 26 sites adjacent to
// (x,y,z). Sites outside the lattice count as dead.
func (g *Grid) NeighborCount(x, y, z int) int {
	cells := g.arenas[g.cur]
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				nx, ny, nz := x+dx, y+dy, z+dz
				if !g.inBounds(nx, ny, nz) {
					continue
				}
				if cells[g.index(nx, ny, nz)].Alive {
					count++
				}
			}
		}
	}
	return count
}

// Next reports whether a cell with the given state and live neighbor count is
// alive in the following generation.
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors >= SurviveMin && neighbors <= SurviveMax
	}
	return neighbors == BirthCount
}

// Tick applies the transition rule to every cell at once.
func (g *Grid) Tick() { g.tick(nil) }

// tick visits cells in the given index order, or sequentially when order is
// nil. Reads only touch the current arena and writes only the scratch arena.
func (g *Grid) tick(order []int) {
	cur, next := g.arenas[g.cur], g.arenas[1-g.cur]
	visit := func(i int) {
		x, y, z := g.coords(i)
		c := cur[i]
		next[i] = Cell{Alive: Next(c.Alive, g.NeighborCount(x, y, z)), Size: c.Size}
	}
	if order == nil {
		for i := range cur {
			visit(i)
		}
	} else {
		for _, i := range order {
			visit(i)
		}
	}
	g.cur = 1 - g.cur
	g.generation++
}

func (g *Grid) coords(i int) (x, y, z int) {
	z = i % g.n
	y = (i / g.n) % g.n
	x = i / (g.n * g.n)
	return x, y, z
}

// UpdateSizes replaces the Size of every current cell with f(cell). Alive is
// left untouched.
func (g *Grid) UpdateSizes(f func(c Cell) float64) {
	cells := g.arenas[g.cur]
	for i := range cells {
		cells[i].Size = f(cells[i])
	}
}

// Each calls fn for every cell of the current generation in x, y, z order.
func (g *Grid) Each(fn func(x, y, z int, c Cell)) {
	for i, c := range g.arenas[g.cur] {
		x, y, z := g.coords(i)
		fn(x, y, z, c)
	}
}

func (g *Grid) Population() int {
	count := 0
	for _, c := range g.arenas[g.cur] {
		if c.Alive {
			count++
		}
	}
	return count
}

// Hash fingerprints the alive pattern of the current generation.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	var b byte
	bits := 0
	for _, c := range g.arenas[g.cur] {
		b <<= 1
		if c.Alive {
			b |= 1
		}
		bits++
		if bits == 8 {
			h.Write([]byte{b})
			b, bits = 0, 0
		}
	}
	if bits > 0 {
		h.Write([]byte{b})
	}
	return h.Sum64()
}

func (g *Grid) Clone() *Grid {
	c := &Grid{n: g.n, cur: g.cur, generation: g.generation}
	for i := range g.arenas {
		c.arenas[i] = make([]Cell, len(g.arenas[i]))
		copy(c.arenas[i], g.arenas[i])
	}
	return c
}

// Equal reports whether both lattices have the same side and alive pattern.
func (g *Grid) Equal(o *Grid) bool {
	if g.n != o.n {
		return false
	}
	a, b := g.arenas[g.cur], o.arenas[o.cur]
	for i := range a {
		if a[i].Alive != b[i].Alive {
			return false
		}
	}
	return true
}
