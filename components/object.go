package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the collision body of an entity. X/Y is the top-left corner.
type ObjectData struct {
	*resolv.Object
}

// Center returns the midpoint of the body.
func (o *ObjectData) Center() (x, y float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
