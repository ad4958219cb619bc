package factory

import (
	"github.com/automoto/merlinio-playground/archetypes"
	"github.com/automoto/merlinio-playground/components"
	cfg "github.com/automoto/merlinio-playground/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateExplosion spawns an impact effect centered at (x, y). The radius grows
// and the alpha fades linearly, one tween step per tick.
func CreateExplosion(w donburi.World, x, y float64) *donburi.Entry {
	explosion := archetypes.Explosion.Spawn(w)

	growTicks := float32(cfg.Explosion.MaxRadius / cfg.Explosion.GrowthRate)
	fadeTicks := float32(1 / cfg.Explosion.FadeRate)

	components.Explosion.Set(explosion, &components.ExplosionData{
		X:           x,
		Y:           y,
		Radius:      0,
		Alpha:       1,
		MaxRadius:   cfg.Explosion.MaxRadius,
		RadiusTween: gween.New(0, float32(cfg.Explosion.MaxRadius), growTicks, ease.Linear),
		AlphaTween:  gween.New(1, 0, fadeTicks, ease.Linear),
	})

	return explosion
}
