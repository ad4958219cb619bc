package systems

import (
	"github.com/automoto/merlinio-playground/components"
	cfg "github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/tags"
	"github.com/yohamta/donburi"
)

// StartRound moves an idle round to running. It reports whether the state
// changed.
func StartRound(w donburi.World) bool {
	round := getRound(w)
	if round.State != components.RoundIdle {
		return false
	}
	resetEndState(round)
	round.State = components.RoundRunning
	return true
}

// TogglePause flips between running and paused. Any other state is left alone.
func TogglePause(w donburi.World) bool {
	round := getRound(w)
	switch round.State {
	case components.RoundRunning:
		round.State = components.RoundPaused
	case components.RoundPaused:
		round.State = components.RoundRunning
	default:
		return false
	}
	return true
}

// EvaluateRound ends a running round once either side has no health left.
// The player losing takes priority when both are depleted.
func EvaluateRound(w donburi.World) bool {
	round := getRound(w)
	if round.State != components.RoundRunning {
		return false
	}
	player, enemy, ok := combatants(w)
	if !ok {
		return false
	}

	switch {
	case components.Health.Get(player).Depleted():
		round.Outcome = components.OutcomeLost
		round.Message = cfg.Message.Lost
	case components.Health.Get(enemy).Depleted():
		round.Outcome = components.OutcomeWon
		round.Message = cfg.Message.Won
	default:
		return false
	}

	round.State = components.RoundEnded
	round.Typed = ""
	round.TypingIndex = 0
	emit(w, components.Event{Kind: components.EventRoundEnded, Outcome: round.Outcome})

	// Typing starts on the same tick with the first character shown.
	round.State = components.RoundTyping
	revealNext(round)
	return true
}

// Respawn restores both characters to their spawn state and resumes the
// round. Only valid once the end message has finished typing.
func Respawn(w donburi.World) bool {
	round := getRound(w)
	if round.State != components.RoundAwaitingRespawn {
		return false
	}

	if player, ok := tags.Player.First(w); ok {
		resetCharacter(w, player)
	}
	if enemy, ok := tags.Enemy.First(w); ok {
		resetCharacter(w, enemy)
	}
	clearExplosions(w)

	resetEndState(round)
	round.State = components.RoundRunning
	emit(w, components.Event{Kind: components.EventRespawned})
	return true
}

func resetCharacter(w donburi.World, e *donburi.Entry) {
	spawn := components.Spawn.Get(e)
	obj := components.Object.Get(e)
	obj.X = spawn.X
	obj.Y = spawn.Y
	obj.Update()

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = true

	health := components.Health.Get(e)
	health.Current = health.Max

	shooter := components.Shooter.Get(e)
	clearShots(w, shooter)
	shooter.Cooldown = 0

	if e.HasComponent(components.Dodge) {
		components.Dodge.Get(e).AvoidCount = 0
	}
}

func resetEndState(round *components.RoundData) {
	round.Outcome = components.OutcomeNone
	round.Message = ""
	round.Typed = ""
	round.TypingIndex = 0
}
