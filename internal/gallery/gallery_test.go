package gallery

import (
	"math/rand"
	"testing"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	return New(rand.New(rand.NewSource(1)), DefaultBirds, DefaultWinScore)
}

func TestCollide(t *testing.T) {
	box := Rect{0, 0, 1, 1}
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"overlap", Rect{0.5, 0.5, 1.5, 1.5}, true},
		{"inside", Rect{0.2, 0.2, 0.4, 0.4}, true},
		{"touching right edge", Rect{1, 0, 2, 1}, true},
		{"touching top edge", Rect{0, 1, 1, 2}, true},
		{"touching corner", Rect{1, 1, 2, 2}, true},
		{"apart horizontally", Rect{1.01, 0, 2, 1}, false},
		{"apart vertically", Rect{0, -2, 1, -0.01}, false},
	}

	for _, tt := range tests {
		if got := Collide(box, tt.r); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
		if got := Collide(tt.r, box); got != tt.want {
			t.Errorf("%s (swapped): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestSpawn(t *testing.T) {
	g := newGame(t)
	if len(g.Birds) != DefaultBirds {
		t.Fatalf("expected %d birds, got %d", DefaultBirds, len(g.Birds))
	}
	for i := 0; i < 1000; i++ {
		b := g.spawn()
		cy := (b.Box.Bottom + b.Box.Top) / 2
		cx := (b.Box.Left + b.Box.Right) / 2
		if cy < BirdMinY || cy > BirdMaxY {
			t.Fatalf("bird height %f out of range", cy)
		}
		if b.Speed < BirdMinSpeed || b.Speed > BirdMaxSpeed {
			t.Fatalf("bird speed %f out of range", b.Speed)
		}
		if (cx == -1 && b.Dir != 1) || (cx == 1 && b.Dir != -1) {
			t.Fatalf("bird at %f flies the wrong way (%f)", cx, b.Dir)
		}
	}
}

func TestFire(t *testing.T) {
	g := newGame(t)
	g.MoveShooter(0.3)
	g.Fire()
	if len(g.Bullets) != 1 {
		t.Fatalf("expected one bullet, got %d", len(g.Bullets))
	}
	b := g.Bullets[0]
	if b.Bottom != ShooterTipY || b.Left != 0.3-BulletWidth/2 {
		t.Errorf("bullet not at shooter tip: %+v", b)
	}
}

func TestMoveShooterClamps(t *testing.T) {
	g := newGame(t)
	g.MoveShooter(4)
	if g.ShooterX != 1 {
		t.Errorf("expected 1, got %f", g.ShooterX)
	}
	g.MoveShooter(-4)
	if g.ShooterX != -1 {
		t.Errorf("expected -1, got %f", g.ShooterX)
	}
}

func TestBulletLeavesScreen(t *testing.T) {
	g := newGame(t)
	g.Birds = nil
	g.Fire()
	for i := 0; i < 100 && len(g.Bullets) > 0; i++ {
		g.Step()
	}
	if len(g.Bullets) != 0 {
		t.Error("expected bullet removed after leaving the screen")
	}
}

func TestBirdRespawnsOffScreen(t *testing.T) {
	g := newGame(t)
	g.Birds = []Bird{{Box: Rect{0.99, 0.5, 1.04, 0.55}, Speed: 0.02, Dir: 1}}
	g.Step()
	if len(g.Birds) != 1 {
		t.Fatalf("expected bird count kept, got %d", len(g.Birds))
	}
	if g.Birds[0].Box.Left > 1 {
		t.Error("expected bird respawned after leaving the screen")
	}
}

// place puts a stationary bird right above a fresh bullet so the next step hits.
func place(g *Game) {
	g.Bullets = nil
	g.Birds = []Bird{{Box: Rect{-0.025, -0.7, 0.025, -0.65}, Speed: 0, Dir: 1}}
	g.MoveShooter(0)
	g.Fire()
}

func TestHitScoresAndRespawns(t *testing.T) {
	g := newGame(t)
	place(g)
	g.Step()
	if g.Score != 1 {
		t.Fatalf("expected score 1, got %d", g.Score)
	}
	if len(g.Bullets) != 0 {
		t.Error("expected bullet consumed by the hit")
	}
	if len(g.Birds) != 1 || g.Birds[0].Box.Bottom < 0 {
		t.Error("expected the hit bird replaced by a new one")
	}
}

func TestGameOverAndReset(t *testing.T) {
	g := newGame(t)
	for i := 0; i < DefaultWinScore; i++ {
		place(g)
		g.Step()
	}
	if g.State != GameOver {
		t.Fatalf("expected game over at score %d, got %v", g.Score, g.State)
	}

	// nothing moves or scores once the round is over
	g.Fire()
	g.Step()
	if g.Score != DefaultWinScore || len(g.Bullets) != 0 {
		t.Errorf("expected frozen game, got score %d and %d bullets", g.Score, len(g.Bullets))
	}

	g.Reset()
	if g.State != Playing || g.Score != 0 || len(g.Birds) != DefaultBirds {
		t.Errorf("unexpected state after reset: %v score %d birds %d", g.State, g.Score, len(g.Birds))
	}
}
