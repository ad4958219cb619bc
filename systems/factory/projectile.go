package factory

import (
	"github.com/automoto/merlinio-playground/archetypes"
	"github.com/automoto/merlinio-playground/components"
	"github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateProjectile spawns a projectile at the center of owner travelling in
// direction and appends it to the owner's in-flight list. Callers check that
// the owner is allowed to fire.
func CreateProjectile(w donburi.World, owner *donburi.Entry, direction float64) *donburi.Entry {
	ownerEntity := owner.Entity()
	startX, startY := components.Object.Get(owner).Center()

	side := components.SidePlayer
	if owner.HasComponent(tags.Enemy) {
		side = components.SideEnemy
	}

	speed := config.Projectile.Speed
	if direction != config.DirectionRight {
		speed = -speed
	}
	radius := config.Projectile.Radius

	p := archetypes.Projectile.Spawn(w)

	obj := resolv.NewObject(startX-radius, startY-radius, radius*2, radius*2, tags.ResolvProjectile)
	obj.Data = p.Entity()
	components.Object.Set(p, &components.ObjectData{Object: obj})
	SpaceOf(w).Add(obj)

	components.Projectile.Set(p, &components.ProjectileData{
		X:      startX,
		Y:      startY,
		Radius: radius,
		Speed:  speed,
		Owner:  ownerEntity,
		Side:   side,
	})

	shooter := components.Shooter.Get(w.Entry(ownerEntity))
	shooter.Projectiles = append(shooter.Projectiles, p.Entity())

	return p
}

// DestroyProjectile removes a projectile entity and its body. It does not
// touch the owner's in-flight list.
func DestroyProjectile(w donburi.World, entity donburi.Entity) {
	if !w.Valid(entity) {
		return
	}
	entry := w.Entry(entity)
	if obj := components.Object.Get(entry); obj != nil && obj.Object != nil {
		SpaceOf(w).Remove(obj.Object)
	}
	w.Remove(entity)
}
