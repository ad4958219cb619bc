package systems

import (
	"testing"

	"github.com/automoto/merlinio-playground/components"
	"github.com/automoto/merlinio-playground/systems/factory"
	"github.com/yohamta/donburi"
)

const (
	testWidth  = 1280
	testHeight = 720
)

// newTestWorld builds the default arena layout: player at x 100, enemy at
// x 1100, both at y 520 and grounded.
func newTestWorld(t *testing.T) (donburi.World, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateArena(w, testWidth, testHeight)
	player := factory.CreatePlayer(w, 100, 520)
	enemy := factory.CreateEnemy(w, 1100, 520)
	factory.CreateRound(w)
	return w, player, enemy
}

func setState(w donburi.World, state components.RoundState) {
	getRound(w).State = state
}

// placeShot moves a projectile center to (x, y).
func placeShot(shot *donburi.Entry, x, y float64) {
	p := components.Projectile.Get(shot)
	p.X, p.Y = x, y
	obj := components.Object.Get(shot)
	obj.X, obj.Y = x-p.Radius, y-p.Radius
	obj.Update()
}

func explosions(w donburi.World) []*components.ExplosionData {
	var out []*components.ExplosionData
	components.Explosion.Each(w, func(e *donburi.Entry) {
		out = append(out, components.Explosion.Get(e))
	})
	return out
}

func eventKinds(w donburi.World) []components.EventKind {
	var kinds []components.EventKind
	for _, ev := range DrainEvents(w) {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}
