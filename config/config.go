// Package config holds the tuning values shared by the simulation and every
// front-end. It must have zero dependencies on ebiten or any graphics library
// so the headless and terminal binaries stay free of a window system.
package config

import "image/color"

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity   float64 // Added to vertical speed every airborne tick
	JumpSpeed float64 // Vertical speed set on jump (negative = up)
	MoveSpeed float64 // Horizontal speed set while a move key is held
}

// CharacterConfig contains the shared character dimensions and spawn layout
type CharacterConfig struct {
	Width  float64
	Height float64
	Health int

	PlayerSpawnX     float64 // Absolute x of the player spawn
	EnemySpawnOffset float64 // Enemy spawns at arena width minus this offset
	SpawnYOffset     float64 // Both spawn at arena height minus this offset
}

// ProjectileConfig contains projectile configuration
type ProjectileConfig struct {
	Radius float64
	Speed  float64 // Magnitude, direction is encoded by sign
	Damage int
}

// EnemyConfig contains the scripted enemy behaviour values
type EnemyConfig struct {
	DodgeLimit    int     // Number of player hits sidestepped without damage
	DodgeDistance float64 // Pixels the enemy is pushed back on a dodge

	// Shot cadence: max(MinCooldown, BaseCooldown - (MaxHealth - player health))
	BaseCooldown int
	MinCooldown  int
}

// ExplosionConfig contains explosion decay configuration
type ExplosionConfig struct {
	MaxRadius  float64
	GrowthRate float64 // Radius gained per tick
	FadeRate   float64 // Alpha lost per tick
}

// MessageConfig contains the end-of-round messages
type MessageConfig struct {
	Lost  string
	Won   string
	Title string
}

// ColorConfig contains the palette shared by all renderers
type ColorConfig struct {
	Background   color.RGBA
	Title        color.RGBA
	Player       color.RGBA
	Enemy        color.RGBA
	Projectile   color.RGBA
	Explosion    color.RGBA
	HealthBarBg  color.RGBA
	HealthBarFg  color.RGBA
	HealthBarRim color.RGBA
	MessageWon   color.RGBA
	MessageLost  color.RGBA
	Debug        color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int // Simulation steps per second for ticker-driven front-ends
	Debug    bool
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Character CharacterConfig
var Projectile ProjectileConfig
var Enemy EnemyConfig
var Explosion ExplosionConfig
var Message MessageConfig
var Colors ColorConfig

// Direction constants for projectile travel
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:    1280,
		Height:   720,
		TickRate: 60,
	}

	Physics = PhysicsConfig{
		Gravity:   0.5,
		JumpSpeed: -15.0,
		MoveSpeed: 5.0,
	}

	Character = CharacterConfig{
		Width:  80,
		Height: 160,
		Health: 100,

		PlayerSpawnX:     100,
		EnemySpawnOffset: 180,
		SpawnYOffset:     200,
	}

	Projectile = ProjectileConfig{
		Radius: 8,
		Speed:  8,
		Damage: 20,
	}

	Enemy = EnemyConfig{
		DodgeLimit:    2,
		DodgeDistance: 30,
		BaseCooldown:  120,
		MinCooldown:   30,
	}

	Explosion = ExplosionConfig{
		MaxRadius:  30,
		GrowthRate: 2,
		FadeRate:   0.05,
	}

	Message = MessageConfig{
		Lost:  "Game over, you lost!",
		Won:   "You won? howwww!",
		Title: "Merlinio Playground",
	}

	Colors = ColorConfig{
		Background:   color.RGBA{R: 24, G: 28, B: 40, A: 255},
		Title:        color.RGBA{R: 149, G: 228, B: 228, A: 242},
		Player:       color.RGBA{R: 70, G: 130, B: 230, A: 255},
		Enemy:        color.RGBA{R: 200, G: 60, B: 80, A: 255},
		Projectile:   color.RGBA{R: 255, G: 0, B: 0, A: 255},
		Explosion:    color.RGBA{R: 255, G: 165, B: 0, A: 255},
		HealthBarBg:  color.RGBA{R: 255, G: 0, B: 0, A: 255},
		HealthBarFg:  color.RGBA{R: 0, G: 128, B: 0, A: 255},
		HealthBarRim: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		MessageWon:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
		MessageLost:  color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Debug:        color.RGBA{R: 0, G: 255, B: 255, A: 255},
	}
}

// FloorY returns the floor line for the configured arena.
func (c *Config) FloorY() float64 {
	return float64(c.Height)
}
