package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData describes how a body is drawn. Actors are drawn as filled
// rectangles in Color; Alpha 0 hides the entity.
type SpriteData struct {
	Color color.RGBA
	Alpha float64
	FlipX bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
