package systems

import (
	"github.com/automoto/merlinio-playground/components"
	cfg "github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/shared/gamemath"
	"github.com/automoto/merlinio-playground/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateEnemy fires the scripted enemy shot. The cadence tightens as the
// player loses health.
func UpdateEnemy(w donburi.World) {
	player, enemy, ok := combatants(w)
	if !ok {
		return
	}

	shooter := components.Shooter.Get(enemy)
	if shooter.Cooldown > 0 || shooter.Live() > 0 {
		shooter.Cooldown--
		return
	}

	shot := factory.CreateProjectile(w, enemy, cfg.DirectionLeft)
	p := components.Projectile.Get(shot)
	emit(w, components.Event{Kind: components.EventFired, Side: components.SideEnemy, X: p.X, Y: p.Y})

	shooter.Cooldown = nextCooldown(components.Health.Get(player))
}

func nextCooldown(playerHealth *components.HealthData) int {
	lost := playerHealth.Max - playerHealth.Current
	return gamemath.MaxInt(cfg.Enemy.MinCooldown, cfg.Enemy.BaseCooldown-lost)
}
