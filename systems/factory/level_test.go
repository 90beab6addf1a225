package factory_test

import (
	"os"
	"testing"

	"github.com/automoto/tileleap/assets"
	"github.com/automoto/tileleap/components"
	"github.com/automoto/tileleap/enemies"
	"github.com/automoto/tileleap/leveldata"
	"github.com/automoto/tileleap/prefabs"
	"github.com/automoto/tileleap/systems/factory"
	"github.com/automoto/tileleap/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestMain(m *testing.M) {
	if err := prefabs.ApplyAll(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:   "test",
		Width:  400,
		Height: 200,
		Colliders: []leveldata.SolidRect{
			{X: 0, Y: 180, W: 20, H: 20},
			{X: 20, Y: 180, W: 20, H: 20},
			{X: 60, Y: 120, W: 20, H: 20, OneWay: true},
		},
		Start: leveldata.Zone{Name: leveldata.StartZone, X: 30, Y: 180},
		End:   leveldata.Zone{Name: leveldata.EndZone, X: 380, Y: 180},
		EnemySpawns: []leveldata.EnemySpawn{
			{Type: "Snaky", X: 200, Y: 180},
			{Type: "Birdman", X: 300, Y: 180},
		},
	}
}

func count(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestBuildLevel(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	require.NoError(t, factory.BuildLevel(e, testLevel(), 0))

	assert.Equal(t, 2, count(e.World, tags.Wall))
	assert.Equal(t, 1, count(e.World, tags.Platform))
	assert.Equal(t, 2, count(e.World, tags.Enemy))
	assert.Equal(t, 1, count(e.World, tags.EndOfLevel))

	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	r := components.Object.Get(player).Rect()
	assert.Equal(t, 30.0, r.CenterX(), "spawn points are bottom-centre")
	assert.Equal(t, 180.0, r.Bottom())
	assert.NotNil(t, components.Health.Get(player).Bar)

	// Enemies keep spawn order and their kind.
	var kinds []string
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		kinds = append(kinds, components.Enemy.Get(entry).Behavior.Kind().String())
	})
	assert.ElementsMatch(t, []string{"Snaky", "Birdman"}, kinds)

	levelEntry, ok := components.Level.First(e.World)
	require.True(t, ok)
	assert.Equal(t, "test", components.Level.Get(levelEntry).CurrentLevel.Name)

	_, ok = components.Camera.First(e.World)
	assert.True(t, ok)
	_, ok = components.Clock.First(e.World)
	assert.True(t, ok)
}

func TestBuildLevelErrors(t *testing.T) {
	unknown := testLevel()
	unknown.EnemySpawns = append(unknown.EnemySpawns, leveldata.EnemySpawn{Type: "Dragon", X: 10, Y: 10})

	noStart := testLevel()
	noStart.Start = leveldata.Zone{}

	noEnd := testLevel()
	noEnd.End = leveldata.Zone{}

	cases := []struct {
		name  string
		level *leveldata.Level
		err   error
	}{
		{"unknown_enemy", unknown, enemies.ErrUnknownEnemyType},
		{"missing_start", noStart, leveldata.ErrMissingZone},
		{"missing_end", noEnd, leveldata.ErrMissingZone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			err := factory.BuildLevel(e, c.level, 0)
			assert.ErrorIs(t, err, c.err)
		})
	}

	assert.Error(t, factory.BuildLevel(ecs.NewECS(donburi.NewWorld()), nil, 0))
}

func TestCreateEnemiesSpawnsNothingOnError(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 400, 200, 16, 16)
	player := factory.CreatePlayer(e, 30, 180)

	group, err := factory.CreateEnemies(e, []leveldata.EnemySpawn{
		{Type: "Birdman", X: 100, Y: 180},
		{Type: "Dragon", X: 200, Y: 180},
	}, player)
	assert.ErrorIs(t, err, enemies.ErrUnknownEnemyType)
	assert.Nil(t, group)
	assert.Equal(t, 0, count(e.World, tags.Enemy))
}

func TestCreateEnemiesWiresGroup(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 400, 200, 16, 16)
	player := factory.CreatePlayer(e, 30, 180)

	group, err := factory.CreateEnemies(e, testLevel().EnemySpawns, player)
	require.NoError(t, err)
	require.Equal(t, 2, group.Len())

	for i, member := range group.Members() {
		require.True(t, member.HasComponent(components.Collider))
		bindings := components.Collider.Get(member).Bindings
		require.Len(t, bindings, 3)
		assert.Equal(t, components.Layer(tags.ResolvSolid), bindings[0].Target)
		assert.Equal(t, components.OneWayLayer(tags.ResolvPlatform), bindings[1].Target)
		assert.Equal(t, components.Body(player), bindings[2].Target)
		assert.NotNil(t, bindings[2].OnCollide)
		assert.Nil(t, bindings[0].OnCollide)

		assert.Equal(t, testLevel().EnemySpawns[i].Type, components.Enemy.Get(member).TypeName)
	}
}

func TestBuildEmbeddedLevel(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	require.NoError(t, factory.BuildLevel(e, assets.MustLoadLevel("level_1"), 0))
	assert.Equal(t, 5, count(e.World, tags.Enemy))
}
