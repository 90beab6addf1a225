package components

import "github.com/yohamta/donburi"

type EndOfLevelData struct {
	Overlap   *Binding // The player's overlap binding against this sensor
	Triggered int      // Times the overlap callback ran
}

var EndOfLevel = donburi.NewComponentType[EndOfLevelData]()
