package sim

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/cubelife/internal/grid"
)

// Ensemble runs the same lattice setup under consecutive seeds, one goroutine
// per run. Each run gets its own lattice and its own metrics.
type Ensemble struct {
	Size      int
	Density   float64
	NumRuns   int
	SeedStart int64
	// Metrics builds a fresh metric set per run; nil means none.
	Metrics func() []Metric
	// Observer, when set, returns the observer attached to run i. It is called
	// from that run's goroutine and its observer sees only that run's lattice.
	Observer func(run int) Observer
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.NumRuns)

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.NumRuns; i++ {
		idx := i
		eg.Go(func() error {
			g, err := grid.New(e.Size)
			if err != nil {
				return err
			}
			g.Seed(rand.New(rand.NewSource(e.SeedStart+int64(idx))), e.Density)

			s := New()
			if e.Metrics != nil {
				for _, m := range e.Metrics() {
					s.AddMetric(m)
				}
			}
			if e.Observer != nil {
				s.AddObserver(e.Observer(idx))
			}
			results[idx], err = s.Run(ctx, g, cfg)
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
