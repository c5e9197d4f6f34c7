package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/cubelife/internal/grid"
)

// Simulator runs the lattice headless, without a clock or renderer.
type Simulator struct {
	metrics   []Metric
	observers []Observer
}

func New() *Simulator {
	return &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, g *grid.Grid, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Population: make([]int, 0, cfg.Ticks+1),
		Hashes:     make([]uint64, 0, cfg.Ticks+1),
		Metrics:    make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.observe(g, result)

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, ctx.Err()
		default:
		}

		if cfg.StopWhenExtinct && g.Population() == 0 {
			break
		}

		g.Tick()
		result.TicksTaken++
		s.observe(g, result)
	}

	s.collect(result)
	return result, nil
}

func (s *Simulator) observe(g *grid.Grid, result *Result) {
	result.Population = append(result.Population, g.Population())
	result.Hashes = append(result.Hashes, g.Hash())
	for _, m := range s.metrics {
		m.Observe(g)
	}
	for _, obs := range s.observers {
		obs.OnTick(g)
	}
}

func (s *Simulator) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if cfg.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", cfg.Ticks)
	}
	return nil
}

// RunWithCallback ticks until cfg.Ticks generations have passed or callback
// returns false. The callback sees every generation, the seed included.
func (s *Simulator) RunWithCallback(ctx context.Context, g *grid.Grid, cfg Config, callback func(*grid.Grid) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(g) || i == cfg.Ticks {
			return nil
		}
		g.Tick()
	}
}
