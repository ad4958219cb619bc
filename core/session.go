package core

import (
	"log"

	"github.com/automoto/merlinio-playground/components"
	"github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/systems"
	"github.com/automoto/merlinio-playground/systems/factory"
	"github.com/automoto/merlinio-playground/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// Session owns one arena and its round. It is not safe for concurrent use;
// a single goroutine must drive Press, Release and Step.
type Session struct {
	id       uuid.UUID
	world    donburi.World
	renderer Renderer

	tick uint64
	last Snapshot
}

// NewSession builds the arena, both characters and an idle round. r may be nil
// when the caller reads snapshots itself.
func NewSession(c *config.Config, r Renderer) *Session {
	id := uuid.New()
	w := donburi.NewWorld()

	width := float64(c.Width)
	height := float64(c.Height)
	spawnY := height - config.Character.SpawnYOffset

	factory.CreateArena(w, width, height)
	factory.CreatePlayer(w, config.Character.PlayerSpawnX, spawnY)
	factory.CreateEnemy(w, width-config.Character.EnemySpawnOffset, spawnY)
	factory.CreateRound(w)

	s := &Session{
		id:       id,
		world:    w,
		renderer: r,
	}
	s.last = s.snapshot(nil)

	s.logf("Session created, arena %dx%d", c.Width, c.Height)
	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current round state.
func (s *Session) State() components.RoundState {
	return components.Round.Get(components.Round.MustFirst(s.world)).State
}

// Ticking reports whether Step advances the simulation in the current state.
func (s *Session) Ticking() bool {
	state := s.State()
	return state == components.RoundRunning || state == components.RoundTyping
}

// Press applies a key press. Control actions drive the round, everything else
// is a player intent.
func (s *Session) Press(action config.ActionID) {
	switch action {
	case config.ActionStart:
		if systems.StartRound(s.world) {
			s.logf("Round started")
		}
	case config.ActionPause:
		if systems.TogglePause(s.world) {
			if s.State() == components.RoundPaused {
				s.logf("Round paused")
			} else {
				s.logf("Round resumed")
			}
		}
	case config.ActionRespawn:
		if systems.Respawn(s.world) {
			s.logf("Respawned")
		}
	default:
		systems.Press(s.world, action)
	}
}

func (s *Session) Release(action config.ActionID) {
	systems.Release(s.world, action)
}

// Step runs one tick and hands the resulting snapshot to the renderer.
// Outside the running and typing states the world is left untouched and
// only the snapshot is refreshed.
func (s *Session) Step() {
	switch s.State() {
	case components.RoundRunning:
		systems.UpdateExplosions(s.world)
		systems.UpdatePhysics(s.world)
		systems.UpdateProjectiles(s.world)
		systems.UpdateEnemy(s.world)
		if systems.EvaluateRound(s.world) {
			round := components.Round.Get(components.Round.MustFirst(s.world))
			s.logf("Round ended: %s", round.Outcome)
		}
		s.tick++
	case components.RoundTyping:
		systems.UpdateExplosions(s.world)
		systems.UpdateMessage(s.world)
		if s.State() == components.RoundAwaitingRespawn {
			s.logf("Respawn available")
		}
		s.tick++
	}

	s.last = s.snapshot(systems.DrainEvents(s.world))
	if s.renderer != nil {
		s.renderer.Render(s.last)
	}
}

func (s *Session) logf(format string, args ...any) {
	log.Printf("[session %s] "+format, append([]any{s.id.String()[:8]}, args...)...)
}

// Snapshot returns the snapshot produced by the latest step.
func (s *Session) Snapshot() Snapshot {
	return s.last
}

func (s *Session) snapshot(events []components.Event) Snapshot {
	w := s.world
	arena := components.Arena.Get(components.Arena.MustFirst(w))
	round := components.Round.Get(components.Round.MustFirst(w))

	snap := Snapshot{
		Tick:   s.tick,
		Width:  arena.Width,
		Height: arena.Height,
		State:  round.State,
		Overlay: Overlay{
			Title:            config.Message.Title,
			Message:          round.Typed,
			Outcome:          round.Outcome,
			RespawnAvailable: round.RespawnAvailable(),
		},
		Events: events,
	}

	if player, ok := tags.Player.First(w); ok {
		snap.Player = characterState(player)
	}
	if enemy, ok := tags.Enemy.First(w); ok {
		snap.Enemy = characterState(enemy)
	}

	components.Projectile.Each(w, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		snap.Projectiles = append(snap.Projectiles, ProjectileState{
			X: p.X, Y: p.Y, Radius: p.Radius, Side: p.Side,
		})
	})
	components.Explosion.Each(w, func(e *donburi.Entry) {
		ex := components.Explosion.Get(e)
		snap.Explosions = append(snap.Explosions, ExplosionState{
			X: ex.X, Y: ex.Y, Radius: ex.Radius, Alpha: ex.Alpha,
		})
	})

	for _, obj := range factory.SpaceOf(w).Objects() {
		snap.Bodies = append(snap.Bodies, BodyState{
			X: obj.X, Y: obj.Y, W: obj.W, H: obj.H,
			Tags: append([]string(nil), obj.Tags()...),
		})
	}

	return snap
}

func characterState(e *donburi.Entry) CharacterState {
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	health := components.Health.Get(e)

	cs := CharacterState{
		X: obj.X, Y: obj.Y, W: obj.W, H: obj.H,
		Health:    health.Current,
		MaxHealth: health.Max,
		OnGround:  physics.OnGround,
	}
	if e.HasComponent(components.Dodge) {
		cs.AvoidCount = components.Dodge.Get(e).AvoidCount
	}
	return cs
}
