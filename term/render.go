package term

import (
	"fmt"
	"image/color"

	"github.com/automoto/merlinio-playground/components"
	"github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/core"
	"github.com/gdamore/tcell/v2"
)

const (
	glyphBody       = '█'
	glyphProjectile = '●'
	glyphExplosion  = '*'
)

// Renderer scales snapshots onto a character grid. The top row holds the
// title and the bottom row the status line.
type Renderer struct {
	screen tcell.Screen
	sound  Sound
}

// NewRenderer draws on screen. sound may be nil.
func NewRenderer(screen tcell.Screen, sound Sound) *Renderer {
	return &Renderer{screen: screen, sound: sound}
}

func (r *Renderer) Render(snap core.Snapshot) {
	r.playCues(snap.Events)

	s := r.screen
	s.Clear()
	cols, rows := s.Size()
	if cols <= 0 || rows < 3 || snap.Width <= 0 || snap.Height <= 0 {
		s.Show()
		return
	}

	g := grid{
		sx: float64(cols) / snap.Width,
		sy: float64(rows-2) / snap.Height,
	}

	drawCentered(s, cols, 0, snap.Overlay.Title, style(config.Colors.Title).Bold(true))

	g.fillRect(s, snap.Player, style(config.Colors.Player))
	g.fillRect(s, snap.Enemy, style(config.Colors.Enemy))

	for _, p := range snap.Projectiles {
		x, y := g.cell(p.X, p.Y)
		s.SetContent(x, y, glyphProjectile, nil, style(config.Colors.Projectile))
	}
	for _, ex := range snap.Explosions {
		x, y := g.cell(ex.X, ex.Y)
		st := style(config.Colors.Explosion)
		if ex.Alpha > 0.5 {
			st = st.Bold(true)
		}
		s.SetContent(x, y, glyphExplosion, nil, st)
	}

	if snap.Overlay.Message != "" {
		st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		if snap.Overlay.Outcome == components.OutcomeWon {
			st = style(config.Colors.MessageWon).Bold(true)
		}
		drawCentered(s, cols, rows/2, snap.Overlay.Message, st)
	}

	drawText(s, 0, rows-1, statusLine(snap), tcell.StyleDefault)
	s.Show()
}

func (r *Renderer) playCues(events []components.Event) {
	if r.sound == nil {
		return
	}
	for _, ev := range events {
		if ev.Kind == components.EventHit || ev.Kind == components.EventProjectilesCollided {
			r.sound.Play()
			return
		}
	}
}

func statusLine(snap core.Snapshot) string {
	hint := "a fire  arrows move/jump  p pause  q quit"
	switch snap.State {
	case components.RoundIdle:
		hint = "s start  q quit"
	case components.RoundAwaitingRespawn:
		hint = "r respawn  q quit"
	}
	return fmt.Sprintf("You %3d | Enemy %3d | %s | %s",
		snap.Player.Health, snap.Enemy.Health, snap.State, hint)
}

type grid struct {
	sx, sy float64
}

// cell maps arena coordinates to a screen cell below the title row.
func (g grid) cell(x, y float64) (int, int) {
	return int(x * g.sx), 1 + int(y*g.sy)
}

func (g grid) fillRect(s tcell.Screen, c core.CharacterState, st tcell.Style) {
	x0, y0 := g.cell(c.X, c.Y)
	x1, y1 := g.cell(c.X+c.W, c.Y+c.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetContent(x, y, glyphBody, nil, st)
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}

func drawCentered(s tcell.Screen, cols, y int, text string, st tcell.Style) {
	x := (cols - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	drawText(s, x, y, text, st)
}

func style(c color.Color) tcell.Style {
	r, g, b, _ := c.RGBA()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
}
