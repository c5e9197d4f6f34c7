// Package anim eases each cell's visual size toward its alive state, one step
// per rendered frame.
package anim

import "github.com/san-kum/cubelife/internal/grid"

const (
	DefaultStep = 0.1

	// snap absorbs float drift so repeated steps land exactly on 0 and 1.
	snap = 1e-9
)

type Animator struct {
	Step float64
}

func New(step float64) Animator {
	if step <= 0 || step > 1 {
		step = DefaultStep
	}
	return Animator{Step: step}
}

func Default() Animator { return Animator{Step: DefaultStep} }

// Ease returns c with its size moved one step toward 1 when alive or 0 when
// dead, clamped to [0,1].
func (a Animator) Ease(c grid.Cell) grid.Cell {
	switch {
	case c.Alive && c.Size < 1:
		c.Size += a.Step
		if c.Size > 1-snap {
			c.Size = 1
		}
	case !c.Alive && c.Size > 0:
		c.Size -= a.Step
		if c.Size < snap {
			c.Size = 0
		}
	}
	return c
}

// Apply eases every cell of the current generation once.
func (a Animator) Apply(g *grid.Grid) {
	g.UpdateSizes(func(c grid.Cell) float64 { return a.Ease(c).Size })
}

// Frames returns how many frames a full grow or shrink takes.
func (a Animator) Frames() int {
	n := int(1/a.Step + 0.5)
	if float64(n)*a.Step < 1-snap {
		n++
	}
	return n
}
