package enemies

import (
	"github.com/automoto/tileleap/components"
	"github.com/automoto/tileleap/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Birdman patrols on foot.
type Birdman struct {
	cfg config.EnemyTypeConfig
}

func NewBirdman(cfg config.EnemyTypeConfig) components.EnemyBehavior {
	return &Birdman{cfg: cfg}
}

func (b *Birdman) Kind() config.EnemyKind { return config.KindBirdman }

func (b *Birdman) Update(_ *ecs.ECS, entry *donburi.Entry) {
	state := components.State.Get(entry)
	if !components.Physics.Get(entry).Grounded() {
		state.Set(config.Jump)
		return
	}

	patrol(entry, b.cfg.Speed, b.cfg.PatrolDistance)
	state.Set(config.Walk)
}
