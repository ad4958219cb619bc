package systems

import (
	"github.com/automoto/merlinio-playground/components"
	cfg "github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/systems/factory"
	"github.com/automoto/merlinio-playground/tags"
	"github.com/yohamta/donburi"
)

// Press applies a player intent. Presses are ignored unless the round is
// running.
func Press(w donburi.World, action cfg.ActionID) {
	if getRound(w).State != components.RoundRunning {
		return
	}
	player, ok := tags.Player.First(w)
	if !ok {
		return
	}
	physics := components.Physics.Get(player)

	switch action {
	case cfg.ActionMoveLeft:
		physics.SpeedX = -cfg.Physics.MoveSpeed
	case cfg.ActionMoveRight:
		physics.SpeedX = cfg.Physics.MoveSpeed
	case cfg.ActionJump:
		if physics.OnGround {
			physics.SpeedY = cfg.Physics.JumpSpeed
			physics.OnGround = false
		}
	case cfg.ActionFire:
		FirePlayer(w)
	}
}

// Release applies a key release. Releases are honoured in every state so a
// key let go during a pause does not leave the player drifting.
func Release(w donburi.World, action cfg.ActionID) {
	if action != cfg.ActionMoveLeft && action != cfg.ActionMoveRight {
		return
	}
	player, ok := tags.Player.First(w)
	if !ok {
		return
	}
	components.Physics.Get(player).SpeedX = 0
}

// FirePlayer launches a rightward projectile if the player has none in
// flight. It reports whether a shot was fired.
func FirePlayer(w donburi.World) bool {
	player, ok := tags.Player.First(w)
	if !ok {
		return false
	}
	if components.Shooter.Get(player).Live() > 0 {
		return false
	}

	shot := factory.CreateProjectile(w, player, cfg.DirectionRight)
	p := components.Projectile.Get(shot)
	emit(w, components.Event{Kind: components.EventFired, Side: components.SidePlayer, X: p.X, Y: p.Y})
	return true
}
