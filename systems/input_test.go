package systems

import (
	"testing"

	"github.com/automoto/merlinio-playground/components"
	"github.com/automoto/merlinio-playground/config"
	"github.com/stretchr/testify/assert"
)

func TestPress_IgnoredUnlessRunning(t *testing.T) {
	w, player, _ := newTestWorld(t)
	physics := components.Physics.Get(player)

	for _, state := range []components.RoundState{
		components.RoundIdle,
		components.RoundPaused,
		components.RoundTyping,
		components.RoundAwaitingRespawn,
	} {
		setState(w, state)
		Press(w, config.ActionMoveRight)
		Press(w, config.ActionFire)
		assert.Equal(t, 0.0, physics.SpeedX, state.String())
		assert.Empty(t, components.Shooter.Get(player).Projectiles, state.String())
	}
}

func TestPress_MoveAndRelease(t *testing.T) {
	w, player, _ := newTestWorld(t)
	setState(w, components.RoundRunning)
	physics := components.Physics.Get(player)

	Press(w, config.ActionMoveLeft)
	assert.Equal(t, -5.0, physics.SpeedX)
	Press(w, config.ActionMoveRight)
	assert.Equal(t, 5.0, physics.SpeedX)

	// Releasing either direction stops the player, even while paused.
	setState(w, components.RoundPaused)
	Release(w, config.ActionMoveLeft)
	assert.Equal(t, 0.0, physics.SpeedX)
}

func TestPress_JumpOnlyFromGround(t *testing.T) {
	w, player, _ := newTestWorld(t)
	setState(w, components.RoundRunning)
	physics := components.Physics.Get(player)

	Press(w, config.ActionJump)
	assert.Equal(t, -15.0, physics.SpeedY)
	assert.False(t, physics.OnGround)

	physics.SpeedY = -3
	Press(w, config.ActionJump)
	assert.Equal(t, -3.0, physics.SpeedY)
}

func TestFirePlayer_OneLiveShot(t *testing.T) {
	w, player, _ := newTestWorld(t)

	assert.True(t, FirePlayer(w))
	assert.False(t, FirePlayer(w))

	shooter := components.Shooter.Get(player)
	assert.Len(t, shooter.Projectiles, 1)

	p := components.Projectile.Get(w.Entry(shooter.Projectiles[0]))
	assert.Equal(t, 8.0, p.Speed)
	assert.Equal(t, player.Entity(), p.Owner)

	events := DrainEvents(w)
	assert.Len(t, events, 1)
	assert.Equal(t, components.EventFired, events[0].Kind)
}
