// Package raster paints session snapshots into an in-memory image with gg.
// It needs no window system and backs the headless binary.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/merlinio-playground/components"
	"github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/core"
	"github.com/automoto/merlinio-playground/fonts"
	"github.com/fogleman/gg"
)

const (
	healthBarHeight = 10
	healthBarGap    = 20 // Distance from the bar top to the character top
	titleY          = 40
)

type Renderer struct {
	dc     *gg.Context
	debug  bool
	frames int
}

func New(width, height int, debug bool) (*Renderer, error) {
	if err := fonts.Load(); err != nil {
		return nil, fmt.Errorf("raster renderer: %w", err)
	}
	return &Renderer{
		dc:    gg.NewContext(width, height),
		debug: debug,
	}, nil
}

// Render paints snap over the previous frame.
func (r *Renderer) Render(snap core.Snapshot) {
	dc := r.dc
	r.frames++

	dc.SetColor(config.Colors.Background)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	dc.Fill()

	dc.SetFontFace(fonts.Title.Get())
	dc.SetColor(config.Colors.Title)
	dc.DrawStringAnchored(snap.Overlay.Title, snap.Width/2, titleY, 0.5, 0.5)

	drawCharacter(dc, snap.Player, config.Colors.Player)
	drawCharacter(dc, snap.Enemy, config.Colors.Enemy)

	dc.SetColor(config.Colors.Projectile)
	for _, p := range snap.Projectiles {
		dc.DrawCircle(p.X, p.Y, p.Radius)
		dc.Fill()
	}

	for _, ex := range snap.Explosions {
		if ex.Radius <= 0 {
			continue
		}
		dc.SetColor(withAlpha(config.Colors.Explosion, ex.Alpha))
		dc.DrawCircle(ex.X, ex.Y, ex.Radius)
		dc.Fill()
	}

	if r.debug {
		dc.SetColor(config.Colors.Debug)
		dc.SetLineWidth(1)
		for _, b := range snap.Bodies {
			dc.DrawRectangle(b.X, b.Y, b.W, b.H)
			dc.Stroke()
		}
	}

	if snap.Overlay.Message != "" {
		dc.SetFontFace(fonts.Message.Get())
		dc.SetColor(messageColor(snap.Overlay.Outcome))
		dc.DrawStringAnchored(snap.Overlay.Message, snap.Width/2, snap.Height/2, 0.5, 0.5)
	}
}

func drawCharacter(dc *gg.Context, c core.CharacterState, clr color.RGBA) {
	dc.SetColor(clr)
	dc.DrawRectangle(c.X, c.Y, c.W, c.H)
	dc.Fill()

	barY := c.Y - healthBarGap
	dc.SetColor(config.Colors.HealthBarBg)
	dc.DrawRectangle(c.X, barY, c.W, healthBarHeight)
	dc.Fill()

	dc.SetColor(config.Colors.HealthBarFg)
	dc.DrawRectangle(c.X, barY, c.W*c.HealthFraction(), healthBarHeight)
	dc.Fill()

	dc.SetColor(config.Colors.HealthBarRim)
	dc.SetLineWidth(1)
	dc.DrawRectangle(c.X, barY, c.W, healthBarHeight)
	dc.Stroke()
}

func messageColor(o components.Outcome) color.RGBA {
	if o == components.OutcomeWon {
		return config.Colors.MessageWon
	}
	return config.Colors.MessageLost
}

func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}

// Image returns the most recent frame.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// Frames returns how many snapshots have been rendered.
func (r *Renderer) Frames() int {
	return r.frames
}

func (r *Renderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save frame to %s: %w", path, err)
	}
	return nil
}
