package components

import "github.com/yohamta/donburi"

// EventKind identifies a gameplay event raised during a tick
type EventKind int

const (
	EventFired EventKind = iota
	EventProjectilesCollided
	EventDodged
	EventHit
	EventRoundEnded
	EventRespawned
)

var eventKindNames = map[EventKind]string{
	EventFired:               "fired",
	EventProjectilesCollided: "projectiles-collided",
	EventDodged:              "dodged",
	EventHit:                 "hit",
	EventRoundEnded:          "round-ended",
	EventRespawned:           "respawned",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single gameplay occurrence. Side is the acting combatant for
// EventFired and the affected one for EventDodged and EventHit.
type Event struct {
	Kind    EventKind
	Side    Side
	X, Y    float64
	Health  int     // Remaining health after EventHit
	Outcome Outcome // Set on EventRoundEnded
}

// EventLogData is a singleton collecting the events of the current tick
type EventLogData struct {
	Events []Event
}

var EventLog = donburi.NewComponentType[EventLogData]()
