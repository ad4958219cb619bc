package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ExplosionData is a decaying impact effect. Radius and Alpha are the values
// presented this tick; the tweens drive them.
type ExplosionData struct {
	X, Y      float64
	Radius    float64
	Alpha     float64
	MaxRadius float64

	RadiusTween *gween.Tween
	AlphaTween  *gween.Tween
}

// Done reports whether the explosion has finished decaying.
func (e *ExplosionData) Done() bool {
	return e.Radius >= e.MaxRadius || e.Alpha <= 0
}

var Explosion = donburi.NewComponentType[ExplosionData]()
