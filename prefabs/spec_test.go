package prefabs

import (
	"image/color"
	"testing"
	"time"

	"github.com/automoto/tileleap/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedSpecs(t *testing.T) {
	player, err := LoadSpec[PlayerSpec](PlayerFile)
	require.NoError(t, err)
	require.NoError(t, player.Validate())
	assert.Equal(t, 100.0, player.Speed)
	assert.Equal(t, 2.8, player.JumpMultiplier)
	assert.Equal(t, 1, player.ConsecutiveJumps)
	assert.Equal(t, 1500, player.HitRecoveryMs)

	enemies, err := LoadSpec[EnemiesSpec](EnemiesFile)
	require.NoError(t, err)
	require.NoError(t, enemies.Validate())
	require.Len(t, enemies.Enemies, 2)
	assert.Equal(t, "Birdman", enemies.Enemies[0].Name)
	assert.Equal(t, 20, enemies.Enemies[0].Damage)
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := LoadSpec[PlayerSpec]("nope.yaml")
	assert.Error(t, err)
}

func TestPlayerSpecValidate(t *testing.T) {
	valid := PlayerSpec{
		Speed: 100, JumpMultiplier: 2.8, ConsecutiveJumps: 1, Health: 100,
		HitRecoveryMs: 1500, Collision: CollisionSpec{Width: 20, Height: 38},
	}
	require.NoError(t, valid.Validate())

	cases := map[string]func(*PlayerSpec){
		"speed":  func(s *PlayerSpec) { s.Speed = 0 },
		"jumps":  func(s *PlayerSpec) { s.ConsecutiveJumps = 0 },
		"health": func(s *PlayerSpec) { s.Health = -1 },
		"size":   func(s *PlayerSpec) { s.Collision.Height = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := valid
			mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSpec)
		})
	}
}

func TestEnemiesSpecValidate(t *testing.T) {
	size := CollisionSpec{Width: 10, Height: 10}
	dup := EnemiesSpec{Enemies: []EnemySpec{
		{Name: "Birdman", Collision: size},
		{Name: "Birdman", Collision: size},
	}}
	assert.ErrorIs(t, dup.Validate(), ErrInvalidSpec)

	hop := EnemiesSpec{Enemies: []EnemySpec{{Name: "Snaky", HopSpeed: 100, Collision: size}}}
	assert.ErrorIs(t, hop.Validate(), ErrInvalidSpec)
}

func TestApply(t *testing.T) {
	player, err := LoadSpec[PlayerSpec](PlayerFile)
	require.NoError(t, err)

	var p config.PlayerConfig
	player.Apply(&p)
	assert.Equal(t, 1500*time.Millisecond, p.HitRecovery)
	assert.Equal(t, 100*time.Millisecond, p.TintPeriod)
	assert.Equal(t, 38.0, p.CollisionHeight)

	enemies, err := LoadSpec[EnemiesSpec](EnemiesFile)
	require.NoError(t, err)

	var e config.EnemyConfig
	enemies.Apply(&e)
	require.Contains(t, e.Types, "Snaky")
	assert.Equal(t, 2*time.Second, e.Types["Snaky"].HopInterval)
	assert.Equal(t, color.RGBA{R: 255, G: 140, B: 0, A: 255}, e.Types["Birdman"].Color)
}

func TestYAMLColor(t *testing.T) {
	var c struct {
		Color YAMLColor `yaml:"color"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`color: "#10203040"`), &c))
	assert.True(t, c.Color.Set)
	assert.Equal(t, uint8(0x40), c.Color.A)

	assert.Error(t, yaml.Unmarshal([]byte(`color: "#123"`), &c))
	assert.Error(t, yaml.Unmarshal([]byte(`color: [1, 2]`), &c))
}

func TestApplyFileIgnoresUnknown(t *testing.T) {
	assert.NoError(t, ApplyFile("prefabs/readme.yaml"))
}
