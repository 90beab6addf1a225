package factory

import (
	"github.com/automoto/tileleap/archetypes"
	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/gamemath"
	"github.com/automoto/tileleap/systems"
	"github.com/automoto/tileleap/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at (x, y). The player
// collides with solid tiles and lands on one-way platforms.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	r := gamemath.FromBottomCenter(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Facing:           cfg.DirectionRight,
		Speed:            cfg.Player.Speed,
		JumpMultiplier:   cfg.Player.JumpMultiplier,
		ConsecutiveJumps: cfg.Player.ConsecutiveJumps,
		BounceSpeed:      cfg.Player.BounceSpeed,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Player.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		WorldBounds:  playerWorldBounds(ecs),
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
		Bar:     systems.NewHealthBar(cfg.Player.Health),
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Color: cfg.LightBlue,
		Alpha: 1,
	})

	components.Animation.Set(player, GenerateAnimations("player"))

	collider := components.Collider.Get(player)
	collider.AddCollider(components.Layer(tags.ResolvSolid), nil)
	collider.AddCollider(components.OneWayLayer(tags.ResolvPlatform), nil)

	return player
}

// playerWorldBounds covers the whole level plus room to fall below it.
func playerWorldBounds(ecs *ecs.ECS) *gamemath.Rect {
	width := float64(cfg.C.Width + cfg.C.MapOffset())
	height := float64(cfg.C.Height)
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			height = float64(level.Height)
		}
	}
	return &gamemath.Rect{X: 0, Y: 0, W: width, H: height + cfg.Physics.WorldPadding}
}
