package systems

import (
	"github.com/automoto/tileleap/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every body in the space's cells after it has
// moved.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
