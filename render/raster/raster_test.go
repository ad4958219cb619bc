package raster

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/merlinio-playground/components"
	"github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_PaintsSnapshot(t *testing.T) {
	r, err := New(config.C.Width, config.C.Height, false)
	require.NoError(t, err)

	s := core.NewSession(config.C, r)
	s.Step()

	img := r.Image()
	assert.Equal(t, 1, r.Frames())
	assert.Equal(t, config.Colors.Player, img.At(140, 600))
	assert.Equal(t, config.Colors.Enemy, img.At(1140, 600))
	assert.Equal(t, config.Colors.Background, img.At(640, 700))

	// Full health bar is green across its whole width.
	assert.Equal(t, config.Colors.HealthBarFg, img.At(170, 505))
}

func TestRenderer_HealthBarShrinks(t *testing.T) {
	r, err := New(400, 300, false)
	require.NoError(t, err)

	r.Render(core.Snapshot{
		Width: 400, Height: 300,
		Player: core.CharacterState{X: 100, Y: 100, W: 80, H: 160, Health: 50, MaxHealth: 100},
	})

	img := r.Image()
	assert.Equal(t, config.Colors.HealthBarFg, img.At(120, 85))
	assert.Equal(t, config.Colors.HealthBarBg, img.At(160, 85))
}

func TestRenderer_DebugBodies(t *testing.T) {
	r, err := New(200, 200, true)
	require.NoError(t, err)

	r.Render(core.Snapshot{
		Width: 200, Height: 200,
		Bodies: []core.BodyState{{X: 50.5, Y: 50.5, W: 100, H: 100}},
	})

	_, _, _, a := r.Image().At(100, 50).RGBA()
	assert.NotZero(t, a)
	assert.NotEqual(t, config.Colors.Background, r.Image().At(100, 50))
}

func TestMessageColor(t *testing.T) {
	assert.Equal(t, config.Colors.MessageWon, messageColor(components.OutcomeWon))
	assert.Equal(t, config.Colors.MessageLost, messageColor(components.OutcomeLost))
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 127}, withAlpha(c, 0.5))
	assert.Equal(t, uint8(0), withAlpha(c, -1).A)
	assert.Equal(t, uint8(255), withAlpha(c, 2).A)
}

func TestRenderer_SavePNG(t *testing.T) {
	r, err := New(64, 64, false)
	require.NoError(t, err)
	r.Render(core.Snapshot{Width: 64, Height: 64})

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, r.SavePNG(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, r.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")))
}
