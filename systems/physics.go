package systems

import (
	"github.com/automoto/merlinio-playground/components"
	"github.com/automoto/merlinio-playground/shared/gamemath"
	"github.com/automoto/merlinio-playground/tags"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates the player and then the enemy.
func UpdatePhysics(w donburi.World) {
	arena := components.Arena.Get(components.Arena.MustFirst(w))
	floor := arena.Floor()

	if player, ok := tags.Player.First(w); ok {
		integrate(player, floor)
	}
	if enemy, ok := tags.Enemy.First(w); ok {
		integrate(enemy, floor)
	}
}

func integrate(e *donburi.Entry, floor float64) {
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, physics.Gravity, physics.OnGround)

	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY

	var grounded bool
	obj.Y, grounded = gamemath.ClampToFloor(obj.Y, obj.H, floor)
	if grounded {
		physics.SpeedY = 0
	}
	physics.OnGround = grounded

	obj.Update()
}
