package archetypes

import (
	"github.com/automoto/merlinio-playground/components"
	"github.com/automoto/merlinio-playground/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Object,
		components.Physics,
		components.Health,
		components.Shooter,
		components.Spawn,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Object,
		components.Physics,
		components.Health,
		components.Shooter,
		components.Spawn,
		components.Dodge,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Explosion,
	)
	Arena = newArchetype(
		components.Arena,
		components.Space,
	)
	Round = newArchetype(
		components.Round,
		components.EventLog,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
