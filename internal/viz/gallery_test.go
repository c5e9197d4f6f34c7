package viz

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/cubelife/internal/gallery"
)

func newGalleryModel() GalleryModel {
	g := gallery.New(rand.New(rand.NewSource(1)), gallery.DefaultBirds, gallery.DefaultWinScore)
	return NewGalleryModel(g, "retro")
}

func TestGalleryKeys(t *testing.T) {
	m := newGalleryModel()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(GalleryModel)
	if m.game.ShooterX != shooterStep {
		t.Errorf("expected shooter moved right, got %v", m.game.ShooterX)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(GalleryModel)
	if len(m.game.Bullets) != 1 {
		t.Errorf("expected a bullet fired, got %d", len(m.game.Bullets))
	}
}

func TestGalleryMouseAim(t *testing.T) {
	m := newGalleryModel()
	// cell 2 is the left edge of the padded canvas
	next, _ := m.Update(tea.MouseMsg{X: 2, Y: 10, Action: tea.MouseActionMotion})
	m = next.(GalleryModel)
	if m.game.ShooterX != -1 {
		t.Errorf("expected shooter at the left edge, got %v", m.game.ShooterX)
	}
	next, _ = m.Update(tea.MouseMsg{X: 2 + canvasWidth/2, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(GalleryModel)
	if m.game.ShooterX != 0 || len(m.game.Bullets) != 1 {
		t.Errorf("expected centered shot, got x %v and %d bullets", m.game.ShooterX, len(m.game.Bullets))
	}
}

func TestGalleryMouseIgnoresWheelAndRelease(t *testing.T) {
	m := newGalleryModel()
	msgs := []tea.MouseMsg{
		{X: 2, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
		{X: 2, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
		{X: 2, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	}
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(GalleryModel)
		if m.game.ShooterX != 0 || len(m.game.Bullets) != 0 {
			t.Errorf("%v %v: expected shooter untouched, got x %v and %d bullets",
				msg.Action, msg.Button, m.game.ShooterX, len(m.game.Bullets))
		}
	}
}

func TestGalleryTickDraws(t *testing.T) {
	m := newGalleryModel()
	next, _ := m.Update(TickMsg(time.Now()))
	m = next.(GalleryModel)
	if m.canvas.Lit() == 0 {
		t.Error("expected shooter and birds drawn")
	}
	if !strings.Contains(m.View(), "SHOOTING GALLERY") {
		t.Error("expected gallery header in view")
	}
}

func TestGalleryRestartOnlyWhenOver(t *testing.T) {
	m := newGalleryModel()
	m.game.Score = 3
	next, _ := m.Update(runes("r"))
	m = next.(GalleryModel)
	if m.game.Score != 3 {
		t.Error("expected r ignored while playing")
	}
	m.game.State = gallery.GameOver
	next, _ = m.Update(runes("r"))
	m = next.(GalleryModel)
	if m.game.State != gallery.Playing || m.game.Score != 0 {
		t.Error("expected r to restart a finished game")
	}
	if !strings.Contains(newGalleryModel().View(), "0 / 5") {
		t.Error("expected score line in view")
	}
}
