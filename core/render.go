package core

import "github.com/automoto/merlinio-playground/components"

//go:generate go tool mockgen -destination=./mocks/renderer_mock.go -package=mocks . Renderer

// Renderer presents one snapshot per simulation step.
type Renderer interface {
	Render(snap Snapshot)
}

type CharacterState struct {
	X, Y, W, H float64
	Health     int
	MaxHealth  int
	OnGround   bool
	AvoidCount int
}

// HealthFraction is the remaining health in [0, 1].
func (c CharacterState) HealthFraction() float64 {
	if c.MaxHealth <= 0 {
		return 0
	}
	return float64(c.Health) / float64(c.MaxHealth)
}

type ProjectileState struct {
	X, Y   float64
	Radius float64
	Side   components.Side
}

type ExplosionState struct {
	X, Y   float64
	Radius float64
	Alpha  float64
}

// BodyState is a collision body as registered in the arena space.
type BodyState struct {
	X, Y, W, H float64
	Tags       []string
}

// Overlay is the text layer drawn over the arena.
type Overlay struct {
	Title            string
	Message          string // Typed prefix of the end message
	Outcome          components.Outcome
	RespawnAvailable bool
}

// Snapshot is a read-only copy of the session state after a step. Nothing in
// it aliases the live world.
type Snapshot struct {
	Tick          uint64
	Width, Height float64
	State         components.RoundState

	Player      CharacterState
	Enemy       CharacterState
	Projectiles []ProjectileState
	Explosions  []ExplosionState
	Bodies      []BodyState

	Overlay Overlay
	Events  []components.Event
}
