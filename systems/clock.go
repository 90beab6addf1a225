package systems

import (
	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation clock by one tick and fires due
// timers. It must run first so timer callbacks see the previous tick's
// state settled.
func UpdateClock(e *ecs.ECS) {
	GetClock(e).Advance(cfg.C.TickDuration())
}

// GetClock returns the singleton clock, creating it if needed.
func GetClock(e *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(e.World); !ok {
		e.World.Create(components.Clock)
	}

	ent, _ := components.Clock.First(e.World)
	return components.Clock.Get(ent)
}

// tickSeconds is the length of one tick in seconds.
func tickSeconds() float64 {
	return cfg.C.TickDuration().Seconds()
}
