package systems

import (
	"github.com/automoto/merlinio-playground/components"
	cfg "github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/shared/gamemath"
	"github.com/automoto/merlinio-playground/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateProjectiles moves every projectile and resolves at most one
// collision per tick. Player shots are processed before enemy shots, newest
// first.
func UpdateProjectiles(w donburi.World) {
	player, enemy, ok := combatants(w)
	if !ok {
		return
	}
	arena := components.Arena.Get(components.Arena.MustFirst(w))

	playerShots := components.Shooter.Get(player)
	enemyShots := components.Shooter.Get(enemy)

	for i := len(playerShots.Projectiles) - 1; i >= 0; i-- {
		shot := w.Entry(playerShots.Projectiles[i])
		p := components.Projectile.Get(shot)
		advance(shot, p)

		for j := len(enemyShots.Projectiles) - 1; j >= 0; j-- {
			q := components.Projectile.Get(w.Entry(enemyShots.Projectiles[j]))
			if !gamemath.BoxesNear(p.X, p.Y, p.Radius, q.X, q.Y, q.Radius) {
				continue
			}
			x, y := gamemath.Midpoint(p.X, p.Y, q.X, q.Y)
			factory.CreateExplosion(w, x, y)
			emit(w, components.Event{Kind: components.EventProjectilesCollided, X: x, Y: y})
			removeShot(w, enemyShots, j)
			removeShot(w, playerShots, i)
			return
		}

		if contains(enemy, p) {
			dodge := components.Dodge.Get(enemy)
			if dodge.CanDodge() {
				obj := components.Object.Get(enemy)
				obj.X -= cfg.Enemy.DodgeDistance
				obj.Update()
				dodge.AvoidCount++
				emit(w, components.Event{Kind: components.EventDodged, Side: components.SideEnemy, X: p.X, Y: p.Y})
			} else {
				hit(w, enemy, p.X, p.Y)
			}
			removeShot(w, playerShots, i)
			return
		}

		if gamemath.OutsideSpan(p.X, arena.Width) {
			removeShot(w, playerShots, i)
		}
	}

	for i := len(enemyShots.Projectiles) - 1; i >= 0; i-- {
		shot := w.Entry(enemyShots.Projectiles[i])
		p := components.Projectile.Get(shot)
		advance(shot, p)

		if contains(player, p) {
			hit(w, player, p.X, p.Y)
			removeShot(w, enemyShots, i)
			return
		}

		if gamemath.OutsideSpan(p.X, arena.Width) {
			removeShot(w, enemyShots, i)
		}
	}
}

// advance moves the projectile center and keeps its body in step.
func advance(shot *donburi.Entry, p *components.ProjectileData) {
	p.X += p.Speed
	obj := components.Object.Get(shot)
	obj.X = p.X - p.Radius
	obj.Y = p.Y - p.Radius
	obj.Update()
}

func contains(target *donburi.Entry, p *components.ProjectileData) bool {
	obj := components.Object.Get(target)
	return gamemath.RectContains(obj.X, obj.Y, obj.W, obj.H, p.X, p.Y)
}

// hit applies projectile damage to target and spawns an explosion at (x, y).
func hit(w donburi.World, target *donburi.Entry, x, y float64) {
	health := components.Health.Get(target)
	health.Current -= cfg.Projectile.Damage
	if health.Current < 0 {
		health.Current = 0
	}
	factory.CreateExplosion(w, x, y)
	emit(w, components.Event{
		Kind:   components.EventHit,
		Side:   sideOf(target),
		X:      x,
		Y:      y,
		Health: health.Current,
	})
}

// removeShot drops the projectile at index i of the shooter's list and
// destroys its entity.
func removeShot(w donburi.World, shooter *components.ShooterData, i int) {
	entity := shooter.Projectiles[i]
	shooter.Projectiles = append(shooter.Projectiles[:i], shooter.Projectiles[i+1:]...)
	factory.DestroyProjectile(w, entity)
}

// clearShots destroys every projectile the shooter has in flight.
func clearShots(w donburi.World, shooter *components.ShooterData) {
	for i := len(shooter.Projectiles) - 1; i >= 0; i-- {
		removeShot(w, shooter, i)
	}
}
