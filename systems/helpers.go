package systems

import (
	"github.com/automoto/merlinio-playground/components"
	"github.com/automoto/merlinio-playground/tags"
	"github.com/yohamta/donburi"
)

// getRound returns the round singleton. The session creates it up front so a
// missing entry is a programming error.
func getRound(w donburi.World) *components.RoundData {
	return components.Round.Get(components.Round.MustFirst(w))
}

// emit appends an event to the current tick's log.
func emit(w donburi.World, ev components.Event) {
	entry, ok := components.EventLog.First(w)
	if !ok {
		return
	}
	log := components.EventLog.Get(entry)
	log.Events = append(log.Events, ev)
}

// DrainEvents returns the events raised since the last drain and clears the log.
func DrainEvents(w donburi.World) []components.Event {
	entry, ok := components.EventLog.First(w)
	if !ok {
		return nil
	}
	log := components.EventLog.Get(entry)
	events := log.Events
	log.Events = nil
	return events
}

func combatants(w donburi.World) (player, enemy *donburi.Entry, ok bool) {
	player, ok = tags.Player.First(w)
	if !ok {
		return nil, nil, false
	}
	enemy, ok = tags.Enemy.First(w)
	if !ok {
		return nil, nil, false
	}
	return player, enemy, true
}

func sideOf(e *donburi.Entry) components.Side {
	if e.HasComponent(tags.Enemy) {
		return components.SideEnemy
	}
	return components.SidePlayer
}
