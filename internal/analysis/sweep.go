package analysis

import (
	"context"
	"math/rand"
	"strings"

	"github.com/san-kum/cubelife/internal/grid"
	"github.com/san-kum/cubelife/internal/sim"
)

// SweepPoint is the set of distinct populations a lattice settles into for
// one seed density.
type SweepPoint struct {
	Density float64
	Values  []float64
}

// DensitySweep seeds a lattice at steps densities between min and max, lets
// each run for transient ticks, then records the distinct populations seen in
// the following record ticks. Every density uses the same seed.
func DensitySweep(ctx context.Context, size int, seed int64, min, max float64, steps, transient, record int) ([]SweepPoint, error) {
	g, err := grid.New(size)
	if err != nil {
		return nil, err
	}
	if steps <= 1 {
		steps = 2
	}
	step := (max - min) / float64(steps-1)

	s := sim.New()
	cfg := sim.Config{Ticks: transient + record}
	results := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		density := min + float64(i)*step
		g.Seed(rand.New(rand.NewSource(seed)), density)

		values := make([]float64, 0, record)
		seen := make(map[int]bool)
		err := s.RunWithCallback(ctx, g, cfg, func(g *grid.Grid) bool {
			if g.Generation() <= uint64(transient) {
				return true
			}
			p := g.Population()
			if !seen[p] {
				seen[p] = true
				values = append(values, float64(p))
			}
			return true
		})
		if err != nil {
			return results, err
		}

		results = append(results, SweepPoint{Density: density, Values: values})
	}
	return results, nil
}

// SweepToASCII plots density left to right against population bottom to top.
func SweepToASCII(data []SweepPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	var minVal, maxVal float64
	found := false
	for _, p := range data {
		for _, v := range p.Values {
			if !found {
				minVal, maxVal = v, v
				found = true
				continue
			}
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if !found {
		return ""
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for i, p := range data {
		col := i * width / len(data)
		for _, v := range p.Values {
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			canvas[row][col] = '•'
		}
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
