package systems

import (
	"github.com/automoto/merlinio-playground/components"
	"github.com/yohamta/donburi"
)

// UpdateMessage types the end message one character per tick. The tick after
// the last character flips the round to awaiting respawn.
func UpdateMessage(w donburi.World) {
	round := getRound(w)
	if round.State != components.RoundTyping {
		return
	}
	if !revealNext(round) {
		round.State = components.RoundAwaitingRespawn
	}
}

// revealNext extends the typed prefix by one rune. It returns false when the
// message is already fully shown.
func revealNext(round *components.RoundData) bool {
	runes := []rune(round.Message)
	if round.TypingIndex >= len(runes) {
		return false
	}
	round.TypingIndex++
	round.Typed = string(runes[:round.TypingIndex])
	return true
}
