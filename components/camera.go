package components

import (
	"github.com/automoto/tileleap/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // Centre of the view in level space
	Zoom     float64
	Bounds   gamemath.Rect // The view never shows anything outside this
}

var Camera = donburi.NewComponentType[CameraData]()
