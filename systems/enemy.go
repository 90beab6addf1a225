package systems

import (
	"github.com/automoto/tileleap/components"
	"github.com/automoto/tileleap/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs each enemy's movement policy.
func UpdateEnemies(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Behavior == nil {
			return
		}
		enemy.Behavior.Update(ecs, e)
	})
}
