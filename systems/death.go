package systems

import (
	"log"

	"github.com/automoto/tileleap/components"
	"github.com/automoto/tileleap/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeath counts down death timers. When the player's runs out the
// level is flagged for a restart.
func UpdateDeath(ecs *ecs.ECS) {
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Timer > 0 {
			death.Timer--
		}
		if death.Timer > 0 || !e.HasComponent(tags.Player) {
			return
		}

		levelEntry, ok := components.Level.First(ecs.World)
		if !ok {
			return
		}
		level := components.Level.Get(levelEntry)
		if !level.Restart {
			log.Printf("restarting level %d", level.LevelIndex)
			level.Restart = true
		}
	})
}

// ShouldRestart reports whether the current level needs reloading.
func ShouldRestart(ecs *ecs.ECS) bool {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	return components.Level.Get(levelEntry).Restart
}
