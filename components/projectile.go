package components

import "github.com/yohamta/donburi"

// ProjectileData holds the authoritative center of a projectile. The body in
// ObjectData is kept in sync with it after every move.
type ProjectileData struct {
	X, Y   float64
	Radius float64
	Speed  float64 // Signed, positive travels right
	Owner  donburi.Entity
	Side   Side
}

var Projectile = donburi.NewComponentType[ProjectileData]()
