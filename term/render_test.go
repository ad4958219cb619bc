package term

import (
	"strings"
	"testing"

	"github.com/automoto/merlinio-playground/components"
	"github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/core"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSound struct {
	plays int
}

func (c *countingSound) Play() {
	c.plays++
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, y int) string {
	cols, _ := s.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestRenderer_DrawsArena(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, nil)

	s := core.NewSession(config.C, r)
	s.Step()

	// Player spans x 100..180 and y 520..680 on a 1280x720 arena.
	ch, _, _, _ := screen.GetContent(8, 18)
	assert.Equal(t, glyphBody, ch)
	ch, _, _, _ = screen.GetContent(70, 18)
	assert.Equal(t, glyphBody, ch)
	ch, _, _, _ = screen.GetContent(40, 18)
	assert.Equal(t, ' ', ch)

	assert.Contains(t, rowText(screen, 0), config.Message.Title)
	assert.Contains(t, rowText(screen, 23), "You 100")
	assert.Contains(t, rowText(screen, 23), "idle")
}

func TestRenderer_ProjectilesAndMessage(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, nil)

	r.Render(core.Snapshot{
		Width: 1280, Height: 720,
		State:       components.RoundTyping,
		Projectiles: []core.ProjectileState{{X: 640, Y: 200, Radius: 8}},
		Overlay:     core.Overlay{Message: "You won", Outcome: components.OutcomeWon},
	})

	ch, _, _, _ := screen.GetContent(40, 7)
	assert.Equal(t, glyphProjectile, ch)
	assert.Contains(t, rowText(screen, 12), "You won")
}

func TestRenderer_PlaysCueOnImpact(t *testing.T) {
	screen := newScreen(t)
	sound := &countingSound{}
	r := NewRenderer(screen, sound)

	r.Render(core.Snapshot{Width: 1280, Height: 720, Events: []components.Event{
		{Kind: components.EventFired},
	}})
	assert.Equal(t, 0, sound.plays)

	r.Render(core.Snapshot{Width: 1280, Height: 720, Events: []components.Event{
		{Kind: components.EventHit},
		{Kind: components.EventProjectilesCollided},
	}})
	assert.Equal(t, 1, sound.plays)
}
