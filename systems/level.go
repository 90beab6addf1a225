package systems

import (
	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Thickness of the drawn surface of a one-way tile.
const oneWayDrawHeight = 4

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	for _, c := range levelData.CurrentLevel.Colliders {
		if !v.visible(c.X, c.Y, c.W, c.H) {
			continue
		}
		x, y := v.toScreen(c.X, c.Y)
		if c.OneWay {
			vector.DrawFilledRect(screen, x, y, v.scale(c.W), v.scale(oneWayDrawHeight), cfg.LightBlue, false)
			continue
		}
		vector.DrawFilledRect(screen, x, y, v.scale(c.W), v.scale(c.H), cfg.Slate, false)
	}
}
