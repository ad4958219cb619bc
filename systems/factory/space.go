package factory

import (
	"github.com/automoto/merlinio-playground/archetypes"
	"github.com/automoto/merlinio-playground/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Cell size of the arena collision grid
const spaceCellSize = 16

// CreateArena creates the playfield singleton together with its collision space.
func CreateArena(w donburi.World, width, height float64) *donburi.Entry {
	arena := archetypes.Arena.Spawn(w)
	components.Arena.SetValue(arena, components.ArenaData{
		Width:  width,
		Height: height,
	})
	spaceData := resolv.NewSpace(int(width), int(height), spaceCellSize, spaceCellSize)
	components.Space.Set(arena, spaceData)
	return arena
}

// SpaceOf returns the arena collision space.
func SpaceOf(w donburi.World) *resolv.Space {
	return components.Space.Get(components.Space.MustFirst(w))
}
