package systems_test

import (
	"testing"

	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/leveldata"
	"github.com/automoto/tileleap/systems"
	"github.com/automoto/tileleap/systems/factory"
	"github.com/automoto/tileleap/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	tileSize = 20.0
	groundY  = 180.0
)

// flatLevel is a 1600px wide level with a floor along groundY.
func flatLevel() *leveldata.Level {
	level := &leveldata.Level{
		Name:       "test",
		Width:      1600,
		Height:     200,
		TileWidth:  int(tileSize),
		TileHeight: int(tileSize),
		Start:      leveldata.Zone{Name: leveldata.StartZone, X: 100, Y: groundY},
		End:        leveldata.Zone{Name: leveldata.EndZone, X: 1560, Y: groundY},
	}
	for x := 0.0; x < 1600; x += tileSize {
		level.Colliders = append(level.Colliders, leveldata.SolidRect{X: x, Y: groundY, W: tileSize, H: tileSize})
	}
	return level
}

// newGame builds level and registers the tick systems in play order. The
// level complete check is left out so tests see raw binding behavior.
func newGame(t *testing.T, level *leveldata.Level) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	for _, s := range []ecs.System{
		systems.UpdateClock,
		systems.UpdatePlayer,
		systems.UpdateEnemies,
		systems.UpdatePhysics,
		systems.UpdateCollisions,
		systems.UpdateObjects,
		systems.UpdateTint,
		systems.UpdateAnimation,
		systems.UpdateDeath,
		systems.UpdateLevelComplete,
		systems.UpdateCamera,
	} {
		e.AddSystem(s)
	}
	require.NoError(t, factory.BuildLevel(e, level, 0))
	return e
}

func press(actions ...cfg.ActionID) components.InputSnapshot {
	var snap components.InputSnapshot
	for _, a := range actions {
		snap[a] = true
	}
	return snap
}

func step(e *ecs.ECS, snap components.InputSnapshot) {
	systems.SetInput(e, snap)
	e.Update()
}

func run(e *ecs.ECS, ticks int, snap components.InputSnapshot) {
	for i := 0; i < ticks; i++ {
		step(e, snap)
	}
}

func playerOf(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	require.True(t, ok, "player exists")
	return entry
}

func firstEnemy(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Enemy.First(e.World)
	require.True(t, ok, "enemy exists")
	return entry
}

// recordingBar remembers every value the HUD was given.
type recordingBar struct {
	values []int
}

func (b *recordingBar) Decrease(health int) {
	b.values = append(b.values, health)
}

func attachBar(e *donburi.Entry) *recordingBar {
	bar := &recordingBar{}
	components.Health.Get(e).Bar = bar
	return bar
}
