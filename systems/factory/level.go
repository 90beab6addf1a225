package factory

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/tileleap/archetypes"
	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/gamemath"
	"github.com/automoto/tileleap/leveldata"
	"github.com/automoto/tileleap/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var errNoLevel = errors.New("no level to build")

// CreateLevel creates the singleton holding the level being played.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, levelIndex int) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		LevelIndex:   levelIndex,
		MapOffset:    cfg.C.MapOffset(),
	})
	return entry
}

// BuildLevel populates an empty world with everything level needs: the
// clock, collision space, tiles, player, enemies, end-of-level sensor and
// camera.
func BuildLevel(ecs *ecs.ECS, level *leveldata.Level, levelIndex int) error {
	if level == nil {
		return errNoLevel
	}
	for _, z := range []struct{ got, want string }{
		{level.Start.Name, leveldata.StartZone},
		{level.End.Name, leveldata.EndZone},
	} {
		if z.got != z.want {
			return fmt.Errorf("build level %s: %w %q", level.Name, leveldata.ErrMissingZone, z.want)
		}
	}

	CreateClock(ecs)
	CreateLevel(ecs, level, levelIndex)

	worldWidth := max(level.Width, cfg.C.Width+cfg.C.MapOffset())
	CreateSpace(ecs, worldWidth, level.Height+int(cfg.Physics.WorldPadding), cfg.Physics.CellSize, cfg.Physics.CellSize)

	for _, c := range level.Colliders {
		if c.OneWay {
			CreatePlatform(ecs, c.X, c.Y, c.W, c.H)
		} else {
			CreateWall(ecs, c.X, c.Y, c.W, c.H)
		}
	}

	player := CreatePlayer(ecs, level.Start.X, level.Start.Y)

	group, err := CreateEnemies(ecs, level.EnemySpawns, player)
	if err != nil {
		return fmt.Errorf("build level %s: %w", level.Name, err)
	}

	CreateEndOfLevel(ecs, level.End, player)

	CreateCamera(ecs, gamemath.Rect{
		X: 0,
		Y: 0,
		W: float64(cfg.C.Width + cfg.C.MapOffset()),
		H: float64(level.Height),
	})
	systems.SnapCamera(ecs)

	log.Printf("built level %s: %d tiles, %d enemies", level.Name, len(level.Colliders), group.Len())
	return nil
}
