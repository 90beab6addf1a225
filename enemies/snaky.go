package enemies

import (
	"github.com/automoto/tileleap/components"
	"github.com/automoto/tileleap/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Snaky creeps along its patrol and hops on a timer.
type Snaky struct {
	cfg config.EnemyTypeConfig

	hop    *components.Timer
	hopDue bool
}

func NewSnaky(cfg config.EnemyTypeConfig) components.EnemyBehavior {
	return &Snaky{cfg: cfg}
}

func (s *Snaky) Kind() config.EnemyKind { return config.KindSnaky }

func (s *Snaky) Update(e *ecs.ECS, entry *donburi.Entry) {
	state := components.State.Get(entry)
	physics := components.Physics.Get(entry)

	if s.cfg.HopSpeed > 0 && !s.hop.Pending() && !s.hopDue {
		s.scheduleHop(e)
	}

	if !physics.Grounded() {
		state.Set(config.Jump)
		return
	}

	patrol(entry, s.cfg.Speed, s.cfg.PatrolDistance)

	if s.hopDue {
		s.hopDue = false
		physics.VelocityY = -s.cfg.HopSpeed
		state.Set(config.Jump)
		return
	}

	if physics.VelocityX == 0 {
		state.Set(config.Idle)
	} else {
		state.Set(config.Walk)
	}
}

func (s *Snaky) scheduleHop(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)
	s.hop = clock.AfterFunc(s.cfg.HopInterval, func() {
		s.hopDue = true
	})
}
