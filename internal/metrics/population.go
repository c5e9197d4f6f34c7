package metrics

import (
	"github.com/san-kum/cubelife/internal/grid"
	"github.com/san-kum/cubelife/internal/sim"
)

// Standard is the metric set reported by headless runs.
func Standard() []sim.Metric {
	return []sim.Metric{NewPeakPopulation(), NewMeanDensity(), NewChurn()}
}

type PeakPopulation struct {
	name string
	peak int
}

func NewPeakPopulation() *PeakPopulation {
	return &PeakPopulation{name: "peak_population"}
}

func (p *PeakPopulation) Name() string { return p.name }

func (p *PeakPopulation) Observe(g *grid.Grid) {
	if n := g.Population(); n > p.peak {
		p.peak = n
	}
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }
func (p *PeakPopulation) Reset()         { p.peak = 0 }

// MeanDensity is the average fraction of live cells per generation.
type MeanDensity struct {
	name    string
	sum     float64
	samples int
}

func NewMeanDensity() *MeanDensity {
	return &MeanDensity{name: "mean_density"}
}

func (m *MeanDensity) Name() string { return m.name }

func (m *MeanDensity) Observe(g *grid.Grid) {
	n := g.Size()
	m.sum += float64(g.Population()) / float64(n*n*n)
	m.samples++
}

func (m *MeanDensity) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanDensity) Reset() {
	m.sum = 0
	m.samples = 0
}
