package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	OnGround bool // True only while the lower edge rests on the floor line
}

var Physics = donburi.NewComponentType[PhysicsData]()
