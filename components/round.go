package components

import "github.com/yohamta/donburi"

// RoundState is the run-state of the round
type RoundState int

const (
	RoundIdle RoundState = iota
	RoundRunning
	RoundPaused
	RoundEnded
	RoundTyping
	RoundAwaitingRespawn
)

var roundStateNames = map[RoundState]string{
	RoundIdle:            "idle",
	RoundRunning:         "running",
	RoundPaused:          "paused",
	RoundEnded:           "ended",
	RoundTyping:          "typing",
	RoundAwaitingRespawn: "awaiting-respawn",
}

func (s RoundState) String() string {
	if name, ok := roundStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Outcome is the result of a finished round
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	}
	return "none"
}

// RoundData is a singleton tracking the round state and the typed end message
type RoundData struct {
	State   RoundState
	Outcome Outcome

	Message     string // Full end message
	Typed       string // Prefix revealed so far
	TypingIndex int    // Next rune index of Message to reveal
}

// RespawnAvailable reports whether the respawn control should be exposed.
func (r *RoundData) RespawnAvailable() bool {
	return r.State == RoundAwaitingRespawn
}

var Round = donburi.NewComponentType[RoundData]()
