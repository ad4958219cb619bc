package components

import "github.com/yohamta/donburi"

// Side identifies which combatant an entity belongs to
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "player"
}

// ShooterData tracks the projectiles a character has in flight.
// Projectiles are kept in spawn order.
type ShooterData struct {
	Projectiles []donburi.Entity
	Cooldown    int // Ticks until the next scripted shot (enemy only)
}

// Live reports how many projectiles are still in flight.
func (s *ShooterData) Live() int {
	return len(s.Projectiles)
}

var Shooter = donburi.NewComponentType[ShooterData]()

// DodgeData is the enemy's sidestep budget against player hits
type DodgeData struct {
	AvoidCount int
	Limit      int
}

// CanDodge reports whether another hit can be sidestepped.
func (d *DodgeData) CanDodge() bool {
	return d.AvoidCount < d.Limit
}

var Dodge = donburi.NewComponentType[DodgeData]()

// SpawnData stores the position a character is restored to on respawn
type SpawnData struct {
	X, Y float64
}

var Spawn = donburi.NewComponentType[SpawnData]()
