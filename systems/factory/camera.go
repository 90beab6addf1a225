package factory

import (
	"github.com/automoto/tileleap/archetypes"
	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the camera with the given view bounds.
func CreateCamera(ecs *ecs.ECS, bounds gamemath.Rect) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Zoom:   cfg.Camera.Zoom,
		Bounds: bounds,
	})
	return camera
}
