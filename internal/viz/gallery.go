package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/cubelife/internal/gallery"
)

// shooterStep is how far one arrow key press moves the shooter.
const shooterStep = 0.05

// GalleryModel plays the shooting gallery in the terminal. The mouse aims
// and clicks fire; arrow keys and space do the same from the keyboard.
type GalleryModel struct {
	game   *gallery.Game
	canvas *Canvas
	theme  Theme
	st     styles
}

func NewGalleryModel(g *gallery.Game, theme string) GalleryModel {
	t := GetTheme(theme)
	return GalleryModel{
		game:   g,
		canvas: NewCanvas(canvasWidth, canvasHeight),
		theme:  t,
		st:     newStyles(t),
	}
}

func (m GalleryModel) Init() tea.Cmd { return tick() }

func (m GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.game.MoveShooter(m.game.ShooterX - shooterStep)
		case "right", "l":
			m.game.MoveShooter(m.game.ShooterX + shooterStep)
		case " ":
			m.game.Fire()
		case "r":
			if m.game.State == gallery.GameOver {
				m.game.Reset()
			}
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.st = newStyles(m.theme)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
			break
		}
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			break
		}
		w, _ := m.canvas.Dots()
		// the canvas style pads two cells on the left
		m.game.MoveShooter(float64((msg.X-2)*2)/float64(w)*2 - 1)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.game.Fire()
		}
	case TickMsg:
		m.game.Step()
		m.draw()
		return m, tick()
	}
	return m, nil
}

// toDots maps normalized [-1,1] coordinates onto the canvas, y up.
func (m GalleryModel) toDots(x, y float64) (int, int) {
	w, h := m.canvas.Dots()
	return int((x + 1) / 2 * float64(w)), int((1 - y) / 2 * float64(h))
}

func (m GalleryModel) fill(r gallery.Rect) {
	x0, y0 := m.toDots(r.Left, r.Top)
	x1, y1 := m.toDots(r.Right, r.Bottom)
	m.canvas.FillRect(x0, y0, x1, y1)
}

func (m GalleryModel) draw() {
	m.canvas.Clear()
	g := m.game

	tx, ty := m.toDots(g.ShooterX, gallery.ShooterTipY)
	lx, ly := m.toDots(g.ShooterX-gallery.ShooterHalfWidth, gallery.ShooterBaseY)
	rx, ry := m.toDots(g.ShooterX+gallery.ShooterHalfWidth, gallery.ShooterBaseY)
	m.canvas.DrawLine(tx, ty, lx, ly)
	m.canvas.DrawLine(lx, ly, rx, ry)
	m.canvas.DrawLine(rx, ry, tx, ty)

	for _, b := range g.Birds {
		m.fill(b.Box)
	}
	for _, b := range g.Bullets {
		m.fill(b)
	}
}

func (m GalleryModel) View() string {
	st := m.st
	var s strings.Builder
	s.WriteString(st.header.Render("SHOOTING GALLERY") + "\n")
	s.WriteString(st.row("Score", fmt.Sprintf("%d / %d", m.game.Score, m.game.WinScore())))
	s.WriteString(st.accent.Render(progressBar(float64(m.game.Score)/float64(m.game.WinScore()), 20)) + "\n")
	s.WriteString(st.row("Bullets", fmt.Sprintf("%d", len(m.game.Bullets))))
	if m.game.State == gallery.GameOver {
		s.WriteString("\n" + st.paused.Render("GAME OVER") + "\n" + st.value.Render("press r to play again") + "\n")
	}
	s.WriteString(st.help.Render(separator(panelWidth-6) + "\nMouse/←→:Aim Click/SP:Fire\nR:Restart T:Theme Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, st.canvas.Render(m.canvas.String()), st.panel.Render(s.String()))
}
