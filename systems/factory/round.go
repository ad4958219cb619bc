package factory

import (
	"github.com/automoto/merlinio-playground/archetypes"
	"github.com/automoto/merlinio-playground/components"
	"github.com/yohamta/donburi"
)

// CreateRound creates the round state singleton in the idle state.
func CreateRound(w donburi.World) *donburi.Entry {
	round := archetypes.Round.Spawn(w)
	components.Round.SetValue(round, components.RoundData{
		State: components.RoundIdle,
	})
	components.EventLog.SetValue(round, components.EventLogData{})
	return round
}
