package factory

import (
	"fmt"
	"strings"

	"github.com/automoto/tileleap/archetypes"
	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/enemies"
	"github.com/automoto/tileleap/gamemath"
	"github.com/automoto/tileleap/leveldata"
	"github.com/automoto/tileleap/systems"
	"github.com/automoto/tileleap/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemies spawns one enemy per spawn point, in order, and wires the
// group to collide with the level and to hurt player on contact. Nothing
// is spawned if any spawn has an unknown type.
func CreateEnemies(ecs *ecs.ECS, spawns []leveldata.EnemySpawn, player *donburi.Entry) (*components.ColliderGroup, error) {
	type pending struct {
		spawn    leveldata.EnemySpawn
		behavior components.EnemyBehavior
		typeCfg  cfg.EnemyTypeConfig
	}

	resolved := make([]pending, 0, len(spawns))
	for i, spawn := range spawns {
		behavior, typeCfg, err := enemies.New(spawn.Type)
		if err != nil {
			return nil, fmt.Errorf("enemy spawn %d: %w", i, err)
		}
		resolved = append(resolved, pending{spawn: spawn, behavior: behavior, typeCfg: typeCfg})
	}

	group := components.NewColliderGroup()
	for _, p := range resolved {
		group.Add(CreateEnemy(ecs, p.spawn.X, p.spawn.Y, p.spawn.Type, p.typeCfg, p.behavior))
	}

	onPlayerCollision := func(enemy, player *donburi.Entry) {
		systems.TakesHit(ecs, player, enemy)
	}
	group.
		AddCollider(components.Layer(tags.ResolvSolid), nil).
		AddCollider(components.OneWayLayer(tags.ResolvPlatform), nil).
		AddCollider(components.Body(player), onPlayerCollision)

	return group, nil
}

// CreateEnemy spawns a single enemy with its feet at (x, y).
func CreateEnemy(ecs *ecs.ECS, x, y float64, typeName string, typeCfg cfg.EnemyTypeConfig, behavior components.EnemyBehavior) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	r := gamemath.FromBottomCenter(x, y, typeCfg.CollisionWidth, typeCfg.CollisionHeight)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:     typeName,
		Kind:         behavior.Kind(),
		Damage:       typeCfg.Damage,
		Facing:       cfg.DirectionRight,
		SpawnX:       r.CenterX(),
		PlatformTags: []string{tags.ResolvSolid, tags.ResolvPlatform},
		Behavior:     behavior,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      typeCfg.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Color: typeCfg.Color,
		Alpha: 1,
	})

	// Kinds without clips just keep a static pose.
	key := strings.ToLower(typeName)
	if _, ok := cfg.CharacterAnimations[key]; ok {
		components.Animation.Set(enemy, GenerateAnimations(key))
	} else {
		components.Animation.Set(enemy, &components.AnimationData{Character: key})
	}

	return enemy
}
