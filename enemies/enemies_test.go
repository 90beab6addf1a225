package enemies_test

import (
	"math"
	"os"
	"testing"

	"github.com/automoto/tileleap/components"
	"github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/enemies"
	"github.com/automoto/tileleap/leveldata"
	"github.com/automoto/tileleap/prefabs"
	"github.com/automoto/tileleap/systems"
	"github.com/automoto/tileleap/systems/factory"
	"github.com/automoto/tileleap/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const groundY = 180.0

func TestMain(m *testing.M) {
	if err := prefabs.ApplyAll(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestRegistry(t *testing.T) {
	assert.Subset(t, enemies.Types(), []string{"Birdman", "Snaky"})

	ctor, err := enemies.Lookup("Birdman")
	require.NoError(t, err)
	assert.Equal(t, config.KindBirdman, ctor(config.EnemyTypeConfig{}).Kind())

	_, err = enemies.Lookup("Dragon")
	assert.ErrorIs(t, err, enemies.ErrUnknownEnemyType)

	behavior, typeCfg, err := enemies.New("Snaky")
	require.NoError(t, err)
	assert.Equal(t, config.KindSnaky, behavior.Kind())
	assert.Equal(t, "Snaky", typeCfg.Name)
	assert.Equal(t, 10, typeCfg.Damage)
}

func TestNewNeedsConfiguration(t *testing.T) {
	if _, err := enemies.Lookup("Unconfigured"); err != nil {
		enemies.Register("Unconfigured", enemies.NewBirdman)
	}
	_, _, err := enemies.New("Unconfigured")
	assert.ErrorIs(t, err, enemies.ErrUnknownEnemyType)

	assert.Panics(t, func() { enemies.Register("Birdman", enemies.NewBirdman) })
}

func TestBehaviorsAreIndependent(t *testing.T) {
	a, _, err := enemies.New("Snaky")
	require.NoError(t, err)
	b, _, err := enemies.New("Snaky")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

// groundLevel has floor tiles from x=0 up to floorEnd and the player parked
// at the far left.
func groundLevel(floorEnd float64, spawns ...leveldata.EnemySpawn) *leveldata.Level {
	level := &leveldata.Level{
		Name:        "patrol",
		Width:       1600,
		Height:      200,
		Start:       leveldata.Zone{Name: leveldata.StartZone, X: 20, Y: groundY},
		End:         leveldata.Zone{Name: leveldata.EndZone, X: 1590, Y: groundY},
		EnemySpawns: spawns,
	}
	for x := 0.0; x < floorEnd; x += 20 {
		level.Colliders = append(level.Colliders, leveldata.SolidRect{X: x, Y: groundY, W: 20, H: 20})
	}
	return level
}

func newWorld(t *testing.T, level *leveldata.Level) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)
	require.NoError(t, factory.BuildLevel(e, level, 0))
	return e
}

func enemyOf(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	return entry
}

func TestPatrolTurnsAtLedge(t *testing.T) {
	e := newWorld(t, groundLevel(400, leveldata.EnemySpawn{Type: "Birdman", X: 360, Y: groundY}))
	enemy := enemyOf(t, e)
	obj := components.Object.Get(enemy)

	turned := false
	for i := 0; i < 600; i++ {
		e.Update()
		if i > 5 {
			require.Equal(t, groundY, obj.Y+obj.H, "tick %d: walked off the ledge", i)
		}
		if components.Enemy.Get(enemy).Facing < 0 {
			turned = true
		}
	}
	assert.True(t, turned)
	assert.LessOrEqual(t, obj.X, 400.0)
}

func TestPatrolTurnsAtWall(t *testing.T) {
	level := groundLevel(1600, leveldata.EnemySpawn{Type: "Birdman", X: 300, Y: groundY})
	level.Colliders = append(level.Colliders, leveldata.SolidRect{X: 360, Y: groundY - 20, W: 20, H: 20})
	e := newWorld(t, level)
	enemy := enemyOf(t, e)
	obj := components.Object.Get(enemy)

	turned := false
	for i := 0; i < 300; i++ {
		e.Update()
		require.LessOrEqual(t, obj.X+obj.W, 360.0)
		if components.Enemy.Get(enemy).Facing < 0 {
			turned = true
		}
	}
	assert.True(t, turned)
}

func TestPatrolStaysInRange(t *testing.T) {
	e := newWorld(t, groundLevel(1600, leveldata.EnemySpawn{Type: "Birdman", X: 800, Y: groundY}))
	enemy := enemyOf(t, e)
	data := components.Enemy.Get(enemy)
	typeCfg := config.Enemy.Types["Birdman"]
	slack := typeCfg.Speed / float64(config.C.TPS)

	facings := map[float64]bool{}
	for i := 0; i < 1500; i++ {
		e.Update()
		centre := components.Object.Get(enemy).Rect().CenterX()
		require.LessOrEqual(t, math.Abs(centre-data.SpawnX), typeCfg.PatrolDistance+slack, "tick %d", i)
		facings[components.Enemy.Get(enemy).Facing] = true
	}
	assert.True(t, facings[config.DirectionLeft] && facings[config.DirectionRight])
	assert.True(t, components.Sprite.Get(enemy).FlipX == (components.Enemy.Get(enemy).Facing < 0))
}

func TestSnakyHops(t *testing.T) {
	e := newWorld(t, groundLevel(1600, leveldata.EnemySpawn{Type: "Snaky", X: 800, Y: groundY}))
	enemy := enemyOf(t, e)
	physics := components.Physics.Get(enemy)
	interval := config.Enemy.Types["Snaky"].HopInterval
	hopTicks := int(interval.Seconds() * float64(config.C.TPS))

	// Settle, then make sure it stays on the ground until the first hop.
	for i := 0; i < hopTicks-5; i++ {
		e.Update()
		if i > 5 {
			require.True(t, physics.Grounded(), "tick %d", i)
		}
	}

	hopped := false
	for i := 0; i < 20; i++ {
		e.Update()
		if physics.VelocityY < 0 {
			hopped = true
			assert.Equal(t, config.Jump, components.State.Get(enemy).CurrentState)
		}
	}
	assert.True(t, hopped)
}
