package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing float64 // config.DirectionLeft or config.DirectionRight

	// Movement
	Speed            float64
	JumpMultiplier   float64
	JumpCount        int
	ConsecutiveJumps int

	// Damage
	HasBeenHit  bool
	BounceSpeed float64
	Recovery    *Timer // Pending hit recovery, nil when not hit
}

var Player = donburi.NewComponentType[PlayerData]()
