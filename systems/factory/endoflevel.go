package factory

import (
	"github.com/automoto/tileleap/archetypes"
	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/gamemath"
	"github.com/automoto/tileleap/leveldata"
	"github.com/automoto/tileleap/systems"
	"github.com/automoto/tileleap/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Width of the end-of-level sensor. It spans the full viewport height.
const endOfLevelWidth = 5

// CreateEndOfLevel places an invisible sensor standing on the end zone and
// completes the level the first time player overlaps it.
func CreateEndOfLevel(ecs *ecs.ECS, zone leveldata.Zone, player *donburi.Entry) *donburi.Entry {
	sensor := archetypes.EndOfLevel.Spawn(ecs)

	r := gamemath.FromBottomCenter(zone.X, zone.Y, endOfLevelWidth, float64(cfg.C.Height))
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvEndOfLevel)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = sensor
	components.Object.SetValue(sensor, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Sprite.SetValue(sensor, components.SpriteData{
		Color: cfg.White,
		Alpha: 0,
	})

	var overlap *components.Binding
	overlap = components.AddOverlap(player, components.Body(sensor), func(_, _ *donburi.Entry) {
		overlap.Deactivate()
		if sensor.Valid() {
			components.EndOfLevel.Get(sensor).Triggered++
		}
		systems.CompleteLevel(ecs)
	})
	components.EndOfLevel.SetValue(sensor, components.EndOfLevelData{Overlap: overlap})

	return sensor
}
