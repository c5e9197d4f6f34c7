package sim

import "github.com/san-kum/cubelife/internal/grid"

// Metric accumulates a scalar over the generations of a run.
type Metric interface {
	Name() string
	Observe(g *grid.Grid)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(g *grid.Grid)
}

type ObserverFunc func(g *grid.Grid)

func (f ObserverFunc) OnTick(g *grid.Grid) { f(g) }

type Config struct {
	Ticks int
	// StopWhenExtinct ends the run at the first empty generation, which can
	// never change again.
	StopWhenExtinct bool
}

// Result holds one entry per observed generation, starting with the seed.
type Result struct {
	Population []int
	Hashes     []uint64
	TicksTaken int
	Metrics    map[string]float64
}

// Series returns the population as float64 for plotting and spectra.
func (r *Result) Series() []float64 {
	out := make([]float64, len(r.Population))
	for i, p := range r.Population {
		out[i] = float64(p)
	}
	return out
}
