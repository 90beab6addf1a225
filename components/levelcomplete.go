package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the level complete overlay
type LevelCompleteData struct {
	IsComplete bool
	Advance    bool // Set when the player asks to continue
	Ticks      int  // Ticks since completion
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
