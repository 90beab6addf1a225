package systems

import (
	"github.com/automoto/tileleap/components"
	"github.com/automoto/tileleap/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates velocities in two phases: queued impulses are
// applied to every body first, then gravity.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		applyImpulse(components.Physics.Get(e))
	})

	dt := tickSeconds()
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.VelocityY = gamemath.ApplyGravity(physics.VelocityY, physics.Gravity, physics.MaxFallSpeed, dt)
	})
}

func applyImpulse(physics *components.PhysicsData) {
	if physics.Impulse == nil {
		return
	}
	physics.VelocityX = physics.Impulse.X
	physics.VelocityY = physics.Impulse.Y
	physics.Impulse = nil
}
