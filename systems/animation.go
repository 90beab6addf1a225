package systems

import (
	"github.com/automoto/tileleap/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation plays the clip matching each entity's state and steps it.
func UpdateAnimation(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if e.HasComponent(components.State) {
			anim.SetAnimation(components.State.Get(e).CurrentState)
		}
		if anim.Animator != nil {
			anim.Animator.Update()
		}
	})
}
