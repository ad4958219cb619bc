package systems

import (
	"github.com/automoto/merlinio-playground/components"
	"github.com/yohamta/donburi"
)

// UpdateExplosions advances every explosion by one tick and removes the ones
// that finished decaying.
func UpdateExplosions(w donburi.World) {
	var done []donburi.Entity
	components.Explosion.Each(w, func(e *donburi.Entry) {
		ex := components.Explosion.Get(e)
		radius, _ := ex.RadiusTween.Update(1)
		alpha, _ := ex.AlphaTween.Update(1)
		ex.Radius = float64(radius)
		ex.Alpha = float64(alpha)
		if ex.Done() {
			done = append(done, e.Entity())
		}
	})

	for _, entity := range done {
		w.Remove(entity)
	}
}

func clearExplosions(w donburi.World) {
	var all []donburi.Entity
	components.Explosion.Each(w, func(e *donburi.Entry) {
		all = append(all, e.Entity())
	})
	for _, entity := range all {
		w.Remove(entity)
	}
}
