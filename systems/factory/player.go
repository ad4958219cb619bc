package factory

import (
	"github.com/automoto/merlinio-playground/archetypes"
	"github.com/automoto/merlinio-playground/components"
	cfg "github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	initCharacter(w, player, x, y, tags.ResolvPlayer)
	return player
}

// initCharacter fills the components shared by the player and the enemy.
func initCharacter(w donburi.World, e *donburi.Entry, x, y float64, resolvTag string) {
	obj := resolv.NewObject(x, y, cfg.Character.Width, cfg.Character.Height, resolvTag)
	obj.Data = e.Entity()
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	SpaceOf(w).Add(obj)

	// Characters start flagged as grounded; the first physics tick settles
	// them onto the floor.
	components.Physics.SetValue(e, components.PhysicsData{
		Gravity:  cfg.Physics.Gravity,
		OnGround: true,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: cfg.Character.Health,
		Max:     cfg.Character.Health,
	})
	components.Shooter.SetValue(e, components.ShooterData{})
	components.Spawn.SetValue(e, components.SpawnData{X: x, Y: y})
}
