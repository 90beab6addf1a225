package components

import (
	"github.com/automoto/tileleap/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemyBehavior is the movement policy of one enemy kind. It runs once per
// tick before physics.
type EnemyBehavior interface {
	Kind() config.EnemyKind
	Update(e *ecs.ECS, enemy *donburi.Entry)
}

type EnemyData struct {
	TypeName string // Spawn type, e.g. "Birdman"
	Kind     config.EnemyKind
	Damage   int
	Facing   float64
	SpawnX   float64

	// Static layers the enemy walks on, probed for ledges.
	PlatformTags []string

	Behavior EnemyBehavior
}

var Enemy = donburi.NewComponentType[EnemyData]()
