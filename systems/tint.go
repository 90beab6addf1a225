package systems

import (
	"github.com/automoto/tileleap/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTint advances every running damage pulse. The pulse repeats until
// the hit recovery clears it.
func UpdateTint(ecs *ecs.ECS) {
	dt := float32(tickSeconds())
	components.Tint.Each(ecs.World, func(e *donburi.Entry) {
		tint := components.Tint.Get(e)
		if !tint.Active() {
			return
		}
		amount, done := tint.Tween.Update(dt)
		if done {
			tint.Tween.Reset()
		}
		tint.Amount = amount
	})
}
