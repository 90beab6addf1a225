// Package prefabs loads the player and enemy tuning specs. The YAML files
// are embedded, a copy under ./prefabs on disk takes precedence, and a
// Watcher can report edits while the game runs.
package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/automoto/tileleap/config"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile  = "player.yaml"
	EnemiesFile = "enemies.yaml"
)

// ErrInvalidSpec is returned when a prefab parses but holds values the
// runtime cannot use.
var ErrInvalidSpec = errors.New("invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CollisionSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerSpec struct {
	Name             string        `yaml:"name"`
	Speed            float64       `yaml:"speed"`
	JumpMultiplier   float64       `yaml:"jump_multiplier"`
	ConsecutiveJumps int           `yaml:"consecutive_jumps"`
	BounceSpeed      float64       `yaml:"bounce_speed"`
	Gravity          float64       `yaml:"gravity"`
	Health           int           `yaml:"health"`
	HitRecoveryMs    int           `yaml:"hit_recovery_ms"`
	TintPeriodMs     int           `yaml:"tint_period_ms"`
	Collision        CollisionSpec `yaml:"collision"`
}

func (s *PlayerSpec) Validate() error {
	switch {
	case s.Speed <= 0:
		return fmt.Errorf("player: speed must be positive: %w", ErrInvalidSpec)
	case s.JumpMultiplier <= 0:
		return fmt.Errorf("player: jump_multiplier must be positive: %w", ErrInvalidSpec)
	case s.ConsecutiveJumps < 1:
		return fmt.Errorf("player: consecutive_jumps must be at least 1: %w", ErrInvalidSpec)
	case s.Health <= 0:
		return fmt.Errorf("player: health must be positive: %w", ErrInvalidSpec)
	case s.HitRecoveryMs <= 0:
		return fmt.Errorf("player: hit_recovery_ms must be positive: %w", ErrInvalidSpec)
	case s.Collision.Width <= 0 || s.Collision.Height <= 0:
		return fmt.Errorf("player: collision size must be positive: %w", ErrInvalidSpec)
	}
	return nil
}

// Apply copies the spec over the player configuration.
func (s *PlayerSpec) Apply(p *config.PlayerConfig) {
	p.Speed = s.Speed
	p.JumpMultiplier = s.JumpMultiplier
	p.ConsecutiveJumps = s.ConsecutiveJumps
	p.BounceSpeed = s.BounceSpeed
	p.Gravity = s.Gravity
	p.Health = s.Health
	p.HitRecovery = time.Duration(s.HitRecoveryMs) * time.Millisecond
	if s.TintPeriodMs > 0 {
		p.TintPeriod = time.Duration(s.TintPeriodMs) * time.Millisecond
	}
	p.CollisionWidth = s.Collision.Width
	p.CollisionHeight = s.Collision.Height
}

type EnemySpec struct {
	Name           string        `yaml:"name"`
	Damage         int           `yaml:"damage"`
	Speed          float64       `yaml:"speed"`
	Gravity        float64       `yaml:"gravity"`
	PatrolDistance float64       `yaml:"patrol_distance"`
	HopSpeed       float64       `yaml:"hop_speed"`
	HopIntervalMs  int           `yaml:"hop_interval_ms"`
	Collision      CollisionSpec `yaml:"collision"`
	Color          YAMLColor     `yaml:"color"`
}

type EnemiesSpec struct {
	Enemies []EnemySpec `yaml:"enemies"`
}

func (s *EnemiesSpec) Validate() error {
	seen := make(map[string]bool, len(s.Enemies))
	for i, e := range s.Enemies {
		switch {
		case e.Name == "":
			return fmt.Errorf("enemies[%d]: name is required: %w", i, ErrInvalidSpec)
		case seen[e.Name]:
			return fmt.Errorf("enemies[%d]: duplicate name %q: %w", i, e.Name, ErrInvalidSpec)
		case e.Damage < 0:
			return fmt.Errorf("enemy %s: damage must not be negative: %w", e.Name, ErrInvalidSpec)
		case e.Collision.Width <= 0 || e.Collision.Height <= 0:
			return fmt.Errorf("enemy %s: collision size must be positive: %w", e.Name, ErrInvalidSpec)
		case e.HopSpeed > 0 && e.HopIntervalMs <= 0:
			return fmt.Errorf("enemy %s: hop_interval_ms is required with hop_speed: %w", e.Name, ErrInvalidSpec)
		}
		seen[e.Name] = true
	}
	return nil
}

// Apply replaces the enemy kinds in cfg with the ones in the spec.
func (s *EnemiesSpec) Apply(cfg *config.EnemyConfig) {
	types := make(map[string]config.EnemyTypeConfig, len(s.Enemies))
	for _, e := range s.Enemies {
		c := config.Orange
		if e.Color.Set {
			c = e.Color.RGBA
		}
		types[e.Name] = config.EnemyTypeConfig{
			Name:            e.Name,
			Damage:          e.Damage,
			Speed:           e.Speed,
			Gravity:         e.Gravity,
			PatrolDistance:  e.PatrolDistance,
			HopSpeed:        e.HopSpeed,
			HopInterval:     time.Duration(e.HopIntervalMs) * time.Millisecond,
			CollisionWidth:  e.Collision.Width,
			CollisionHeight: e.Collision.Height,
			Color:           c,
		}
	}
	cfg.Types = types
}

// ApplyAll loads, validates and applies every prefab to the global config.
func ApplyAll() error {
	for _, name := range []string{PlayerFile, EnemiesFile} {
		if err := ApplyFile(name); err != nil {
			return err
		}
	}
	return nil
}

// ApplyFile reloads a single prefab by file name. Unknown files are ignored
// so it can be fed straight from a Watcher.
func ApplyFile(name string) error {
	switch filepath.Base(name) {
	case PlayerFile:
		spec, err := LoadSpec[PlayerSpec](PlayerFile)
		if err != nil {
			return err
		}
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("prefabs: %s: %w", PlayerFile, err)
		}
		spec.Apply(&config.Player)
	case EnemiesFile:
		spec, err := LoadSpec[EnemiesSpec](EnemiesFile)
		if err != nil {
			return err
		}
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("prefabs: %s: %w", EnemiesFile, err)
		}
		spec.Apply(&config.Enemy)
	}
	return nil
}

// YAMLColor parses "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.RGBA
	Set bool
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	nrgba := color.NRGBA{R: r, G: g, B: b, A: a}
	c.RGBA = color.RGBAModel.Convert(nrgba).(color.RGBA)
	c.Set = true
	return nil
}
