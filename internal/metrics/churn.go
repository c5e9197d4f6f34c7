package metrics

import "github.com/san-kum/cubelife/internal/grid"

// Churn is the mean number of cells that flip state per tick, births and
// deaths together.
type Churn struct {
	name    string
	prev    []bool
	flips   int
	samples int
}

func NewChurn() *Churn {
	return &Churn{name: "churn"}
}

func (c *Churn) Name() string { return c.name }

func (c *Churn) Observe(g *grid.Grid) {
	first := c.prev == nil
	if first {
		n := g.Size()
		c.prev = make([]bool, n*n*n)
	}
	i := 0
	g.Each(func(_, _, _ int, cell grid.Cell) {
		if !first && cell.Alive != c.prev[i] {
			c.flips++
		}
		c.prev[i] = cell.Alive
		i++
	})
	if !first {
		c.samples++
	}
}

func (c *Churn) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.flips) / float64(c.samples)
}

func (c *Churn) Reset() {
	c.prev = nil
	c.flips = 0
	c.samples = 0
}
