// Package gallery is the shooting-gallery mini game: a shooter at the bottom
// of a [-1,1] square fires bullets up at birds crossing the top half.
package gallery

import "math/rand"

const (
	DefaultBirds    = 5
	DefaultWinScore = 5

	BirdSize     = 0.05
	BirdMinY     = 0.1
	BirdMaxY     = 0.9
	BirdMinSpeed = 0.005
	BirdMaxSpeed = 0.015

	BulletWidth  = 0.01
	BulletHeight = 0.03
	BulletSpeed  = 0.03

	// ShooterTipY is where bullets leave the shooter.
	ShooterTipY      = -0.75
	ShooterBaseY     = -0.9
	ShooterHalfWidth = 0.05
)

type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "playing"
}

// Rect is an axis-aligned box in normalized screen coordinates.
type Rect struct {
	Left, Bottom, Right, Top float64
}

// Collide reports overlap; boxes that only touch on an edge still collide.
func Collide(a, b Rect) bool {
	return !(a.Right < b.Left || a.Left > b.Right || a.Top < b.Bottom || a.Bottom > b.Top)
}

func (r Rect) translate(dx, dy float64) Rect {
	return Rect{r.Left + dx, r.Bottom + dy, r.Right + dx, r.Top + dy}
}

type Bird struct {
	Box   Rect
	Speed float64
	// Dir is +1 for birds flying right and -1 for birds flying left.
	Dir float64
}

// Gone reports whether the bird has fully left the screen on its far side.
func (b Bird) Gone() bool {
	if b.Dir > 0 {
		return b.Box.Left > 1
	}
	return b.Box.Right < -1
}

type Game struct {
	Birds    []Bird
	Bullets  []Rect
	ShooterX float64
	Score    int
	State    State

	numBirds int
	winScore int
	rng      *rand.Rand
}

func New(rng *rand.Rand, birds, winScore int) *Game {
	if birds < 1 {
		birds = DefaultBirds
	}
	if winScore < 1 {
		winScore = DefaultWinScore
	}
	g := &Game{numBirds: birds, winScore: winScore, rng: rng}
	g.Reset()
	return g
}

func (g *Game) WinScore() int { return g.winScore }

// Reset starts a new round. It is the only way out of GameOver.
func (g *Game) Reset() {
	g.Score = 0
	g.Bullets = g.Bullets[:0]
	g.Birds = g.Birds[:0]
	for i := 0; i < g.numBirds; i++ {
		g.Birds = append(g.Birds, g.spawn())
	}
	g.State = Playing
}

func (g *Game) spawn() Bird {
	x, dir := 1.0, -1.0
	if g.rng.Float64() > 0.5 {
		x, dir = -1.0, 1.0
	}
	y := g.rng.Float64()*(BirdMaxY-BirdMinY) + BirdMinY
	speed := g.rng.Float64()*(BirdMaxSpeed-BirdMinSpeed) + BirdMinSpeed
	h := BirdSize / 2
	return Bird{
		Box:   Rect{x - h, y - h, x + h, y + h},
		Speed: speed,
		Dir:   dir,
	}
}

// MoveShooter places the shooter tip at x, clamped to the screen.
func (g *Game) MoveShooter(x float64) {
	if x < -1 {
		x = -1
	} else if x > 1 {
		x = 1
	}
	g.ShooterX = x
}

// Fire launches a bullet from the shooter tip. It does nothing once the game
// is over.
func (g *Game) Fire() {
	if g.State != Playing {
		return
	}
	h := BulletWidth / 2
	g.Bullets = append(g.Bullets, Rect{
		Left:   g.ShooterX - h,
		Bottom: ShooterTipY,
		Right:  g.ShooterX + h,
		Top:    ShooterTipY + BulletHeight,
	})
}

// Step advances one frame: bullets, then birds, then collisions.
func (g *Game) Step() {
	if g.State != Playing {
		return
	}

	bullets := g.Bullets[:0]
	for _, b := range g.Bullets {
		b = b.translate(0, BulletSpeed)
		if b.Top > 1 {
			continue
		}
		bullets = append(bullets, b)
	}
	g.Bullets = bullets

	for i := range g.Birds {
		b := &g.Birds[i]
		b.Box = b.Box.translate(b.Speed*b.Dir, 0)
		if b.Gone() {
			*b = g.spawn()
		}
	}

	g.collide()
}

func (g *Game) collide() {
	for i := len(g.Bullets) - 1; i >= 0; i-- {
		for j := range g.Birds {
			if !Collide(g.Birds[j].Box, g.Bullets[i]) {
				continue
			}
			g.Bullets = append(g.Bullets[:i], g.Bullets[i+1:]...)
			g.Score++
			if g.Score >= g.winScore {
				g.State = GameOver
				return
			}
			g.Birds[j] = g.spawn()
			break
		}
	}
}
