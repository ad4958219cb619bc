package scenes

import (
	"image/color"

	"github.com/automoto/merlinio-playground/components"
	cfg "github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/core"
	"github.com/automoto/merlinio-playground/fonts"
	"github.com/automoto/merlinio-playground/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	healthBarHeight = 10
	healthBarGap    = 20
	titleY          = 48
)

// Keyboard bindings. Move keys report releases as well as presses.
var (
	moveKeys = map[ebiten.Key]cfg.ActionID{
		ebiten.KeyArrowLeft:  cfg.ActionMoveLeft,
		ebiten.KeyArrowRight: cfg.ActionMoveRight,
	}
	pressKeys = map[ebiten.Key]cfg.ActionID{
		ebiten.KeyArrowUp: cfg.ActionJump,
		ebiten.KeyA:       cfg.ActionFire,
		ebiten.KeyEnter:   cfg.ActionStart,
		ebiten.KeyS:       cfg.ActionStart,
		ebiten.KeyP:       cfg.ActionPause,
		ebiten.KeyR:       cfg.ActionRespawn,
	}
)

// ArenaScene runs one session at the ebiten tick rate. Each Update is one
// session step and the scene is the session's renderer.
type ArenaScene struct {
	session  *core.Session
	controls *ui.ControlsUI
	snap     core.Snapshot
	debug    bool
}

func NewArenaScene(c *cfg.Config) (*ArenaScene, error) {
	if err := fonts.Load(); err != nil {
		return nil, err
	}

	s := &ArenaScene{debug: c.Debug}
	s.session = core.NewSession(c, s)
	s.snap = s.session.Snapshot()

	controls, err := ui.NewControlsUI(
		func() { s.session.Press(cfg.ActionStart) },
		func() { s.session.Press(cfg.ActionPause) },
		func() { s.session.Press(cfg.ActionRespawn) },
	)
	if err != nil {
		return nil, err
	}
	s.controls = controls
	return s, nil
}

// Render keeps the snapshot for the next Draw.
func (s *ArenaScene) Render(snap core.Snapshot) {
	s.snap = snap
}

func (s *ArenaScene) Update() {
	s.controls.Update()
	s.handleKeys()
	s.session.Step()
	s.controls.Sync(s.snap.State, s.snap.Overlay.RespawnAvailable)
}

func (s *ArenaScene) handleKeys() {
	for key, action := range moveKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.session.Press(action)
		}
		if inpututil.IsKeyJustReleased(key) {
			s.session.Release(action)
		}
	}
	for key, action := range pressKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.session.Press(action)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.debug = !s.debug
	}
}

func (s *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)
	snap := s.snap

	drawCentered(screen, snap.Overlay.Title, fonts.Title.Get(), snap.Width, titleY, cfg.Colors.Title)

	drawCharacter(screen, snap.Player, cfg.Colors.Player)
	drawCharacter(screen, snap.Enemy, cfg.Colors.Enemy)

	for _, p := range snap.Projectiles {
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), cfg.Colors.Projectile, true)
	}
	for _, ex := range snap.Explosions {
		if ex.Radius <= 0 {
			continue
		}
		c := cfg.Colors.Explosion
		clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(ex.Alpha) * 255)}
		vector.FillCircle(screen, float32(ex.X), float32(ex.Y), float32(ex.Radius), clr, true)
	}

	if s.debug {
		drawBodies(screen, snap.Bodies)
	}

	if snap.Overlay.Message != "" {
		clr := cfg.Colors.MessageLost
		if snap.Overlay.Outcome == components.OutcomeWon {
			clr = cfg.Colors.MessageWon
		}
		drawCentered(screen, snap.Overlay.Message, fonts.Message.Get(), snap.Width, int(snap.Height/2), clr)
	}

	s.controls.Draw(screen)
}

func drawCharacter(screen *ebiten.Image, c core.CharacterState, clr color.Color) {
	vector.FillRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), clr, false)

	barY := float32(c.Y - healthBarGap)
	vector.FillRect(screen, float32(c.X), barY, float32(c.W), healthBarHeight, cfg.Colors.HealthBarBg, false)
	vector.FillRect(screen, float32(c.X), barY, float32(c.W*c.HealthFraction()), healthBarHeight, cfg.Colors.HealthBarFg, false)
	vector.StrokeRect(screen, float32(c.X), barY, float32(c.W), healthBarHeight, 1, cfg.Colors.HealthBarRim, false)
}

func drawBodies(screen *ebiten.Image, bodies []core.BodyState) {
	c := cfg.Colors.Debug
	for _, b := range bodies {
		x, y := float32(b.X), float32(b.Y)
		w, h := float32(b.W), float32(b.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}

func drawCentered(screen *ebiten.Image, str string, face font.Face, width float64, y int, clr color.Color) {
	x := (int(width) - font.MeasureString(face, str).Ceil()) / 2
	text.Draw(screen, str, face, x, y, clr)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
