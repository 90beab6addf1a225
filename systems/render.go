package systems

import (
	"image/color"

	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Width of the strip marking which way an actor faces.
const facingMarkWidth = 4

// DrawActors renders every entity with a Sprite as a filled box over its
// collision body. The player is drawn last so it stays on top.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}

	var player *donburi.Entry
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Player) {
			player = e
			return
		}
		drawActor(screen, v, e)
	})
	if player != nil {
		drawActor(screen, v, player)
	}
}

func drawActor(screen *ebiten.Image, v view, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	sprite := components.Sprite.Get(e)
	if sprite.Alpha <= 0 {
		return
	}
	o := components.Object.Get(e)
	if !v.visible(o.X, o.Y, o.W, o.H) {
		return
	}

	var tint float32
	if e.HasComponent(components.Tint) {
		tint = components.Tint.Get(e).Amount
	}
	body := actorColor(sprite.Color, tint, sprite.Alpha)

	x, y := v.toScreen(o.X, o.Y)
	w, h := v.scale(o.W), v.scale(o.H)
	vector.DrawFilledRect(screen, x, y, w, h, body, false)

	mark := v.scale(facingMarkWidth)
	markX := x + w - mark
	if sprite.FlipX {
		markX = x
	}
	vector.DrawFilledRect(screen, markX, y+h/4, mark, h/4, actorColor(cfg.White, 0, sprite.Alpha), false)
}

// actorColor blends c toward white by tint and applies alpha.
func actorColor(c color.RGBA, tint float32, alpha float64) color.RGBA {
	if tint < 0 {
		tint = 0
	}
	if tint > 1 {
		tint = 1
	}
	mix := func(ch uint8) uint8 {
		return uint8(float32(ch) + (255-float32(ch))*tint)
	}
	a := alpha
	if a > 1 {
		a = 1
	}
	out := color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
	// color.RGBA is alpha-premultiplied.
	scale := func(ch uint8) uint8 { return uint8(float64(ch) * a) }
	return color.RGBA{R: scale(out.R), G: scale(out.G), B: scale(out.B), A: scale(out.A)}
}
