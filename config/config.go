package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the game uses.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per second)
	Speed            float64
	JumpMultiplier   float64 // Jump impulse is Speed * JumpMultiplier
	ConsecutiveJumps int     // Jump impulses allowed before touching ground again
	BounceSpeed      float64 // Velocity applied on both axes when hit

	// Physics
	Gravity float64 // pixels per second squared

	// Combat
	Health      int
	HitRecovery time.Duration // Time spent in the Hit state
	TintPeriod  time.Duration // One pulse of the damage tint

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// EnemyTypeConfig contains configuration for a specific enemy kind.
// Values are filled from prefabs/enemies.yaml.
type EnemyTypeConfig struct {
	Name   string
	Damage int

	// Movement
	Speed          float64
	Gravity        float64
	PatrolDistance float64       // Max distance from spawn before turning around
	HopSpeed       float64       // Upward impulse for hopping kinds
	HopInterval    time.Duration // Delay between hops

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Visual
	Color color.RGBA
}

// EnemyConfig holds every enemy kind keyed by its spawn type name.
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	MaxFallSpeed float64 // pixels per second
	GroundProbe  float64 // Extra distance checked below a body for ground contact
	CellSize     int     // resolv space cell size
	WorldPadding float64 // Extra room below the level for the player's world bounds
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Zoom            float64
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// HUDConfig positions the player's health bar.
type HUDConfig struct {
	Margin  float64 // Offset from the visible top-left corner
	Scale   float64
	Width   float64
	Height  float64
	BgColor color.RGBA
	FgColor color.RGBA
	LowHP   color.RGBA
}

// DeathConfig controls the death state.
type DeathConfig struct {
	DelayTicks int // Ticks spent dead before the level reloads
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	HintColor    color.RGBA
	Title        string
	ContinueHint string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowColliders bool
	WatchPrefabs  bool
}

// Config holds general game configuration
type Config struct {
	Width    int // Viewport width
	Height   int // Viewport height
	MapWidth int // Width of the playable map
	TPS      int // Logic ticks per second
}

// MapOffset is how far the map extends past the viewport.
func (c *Config) MapOffset() int {
	if c.MapWidth > c.Width {
		return c.MapWidth - c.Width
	}
	return 0
}

// TickDuration is the simulated time covered by one tick.
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// LeftTopCorner returns the visible top-left corner of the zoomed viewport
// in screen space.
func (c *Config) LeftTopCorner(zoom float64) (float64, float64) {
	w, h := float64(c.Width), float64(c.Height)
	return (w - w/zoom) / 2, (h - h/zoom) / 2
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Camera CameraConfig
var HUD HUDConfig
var Death DeathConfig
var LevelComplete LevelCompleteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Slate        = color.RGBA{R: 90, G: 100, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:    1280,
		Height:   600,
		MapWidth: 1600,
		TPS:      60,
	}

	Player = PlayerConfig{
		Speed:            100,
		JumpMultiplier:   2.8,
		ConsecutiveJumps: 1,
		BounceSpeed:      250,

		Gravity: 500,

		Health:      100,
		HitRecovery: 1500 * time.Millisecond,
		TintPeriod:  100 * time.Millisecond,

		CollisionWidth:  20,
		CollisionHeight: 38,
	}

	// Enemy kinds are loaded from prefabs; Birdman is the fallback used
	// when prefabs are not applied (tests, tools).
	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Birdman": {
				Name:            "Birdman",
				Damage:          20,
				Speed:           50,
				Gravity:         500,
				PatrolDistance:  200,
				CollisionWidth:  20,
				CollisionHeight: 45,
				Color:           Orange,
			},
		},
	}

	Physics = PhysicsConfig{
		MaxFallSpeed: 600,
		GroundProbe:  1,
		CellSize:     16,
		WorldPadding: 200,
	}

	Camera = CameraConfig{
		Zoom:            1.5,
		FollowSmoothing: 0.2,
	}

	HUD = HUDConfig{
		Margin:  5,
		Scale:   2,
		Width:   40,
		Height:  6,
		BgColor: DarkGray,
		FgColor: Green,
		LowHP:   Red,
	}

	Death = DeathConfig{
		DelayTicks: 90,
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   White,
		HintColor:    LightBlue,
		Title:        "LEVEL COMPLETE",
		ContinueHint: "Press jump to continue",
	}

	Debug = DebugConfig{}
}
