package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence.
// Timer counts down each tick; when it reaches 0 the level restarts.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()
