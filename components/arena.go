package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ArenaData is the playfield. The floor line is the bottom edge.
type ArenaData struct {
	Width  float64
	Height float64
}

func (a *ArenaData) Floor() float64 {
	return a.Height
}

var Arena = donburi.NewComponentType[ArenaData]()

var Space = donburi.NewComponentType[resolv.Space]()
