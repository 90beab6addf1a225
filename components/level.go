package components

import (
	"github.com/automoto/tileleap/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	MapOffset    int  // How far the level extends past the viewport
	Restart      bool // Set when the scene should reload this level
}

var Level = donburi.NewComponentType[LevelData]()
