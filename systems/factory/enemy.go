package factory

import (
	"github.com/automoto/merlinio-playground/archetypes"
	"github.com/automoto/merlinio-playground/components"
	cfg "github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/tags"
	"github.com/yohamta/donburi"
)

func CreateEnemy(w donburi.World, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)
	initCharacter(w, enemy, x, y, tags.ResolvEnemy)
	components.Dodge.SetValue(enemy, components.DodgeData{
		Limit: cfg.Enemy.DodgeLimit,
	})
	return enemy
}
