package systems

import (
	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// HealthBar is the HUD's view of the player's health. It only changes when
// the player reports new health through Decrease.
type HealthBar struct {
	Max   int
	Value int
}

func NewHealthBar(max int) *HealthBar {
	return &HealthBar{Max: max, Value: max}
}

// Decrease shows health as the new value. Negative health shows as empty.
func (b *HealthBar) Decrease(health int) {
	if health < 0 {
		health = 0
	}
	b.Value = health
}

// Ratio is the filled fraction of the bar.
func (b *HealthBar) Ratio() float32 {
	if b.Max <= 0 {
		return 0
	}
	return float32(b.Value) / float32(b.Max)
}

// DrawHUD renders the player's health bar in the top-left corner of the
// zoomed view.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	bar, ok := components.Health.Get(playerEntry).Bar.(*HealthBar)
	if !ok {
		return
	}

	zoom := cfg.Camera.Zoom
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		zoom = cameraZoom(components.Camera.Get(cameraEntry))
	}

	// The bar sits at a fixed offset from the visible corner of the zoomed
	// view, then scales with it.
	cornerX, cornerY := cfg.C.LeftTopCorner(zoom)
	halfW, halfH := float64(cfg.C.Width)/2, float64(cfg.C.Height)/2
	x := float32((cornerX+cfg.HUD.Margin-halfW)*zoom + halfW)
	y := float32((cornerY+cfg.HUD.Margin-halfH)*zoom + halfH)
	w := float32(cfg.HUD.Width * cfg.HUD.Scale * zoom)
	h := float32(cfg.HUD.Height * cfg.HUD.Scale * zoom)

	vector.DrawFilledRect(screen, x, y, w, h, cfg.HUD.BgColor, false)

	fill := cfg.HUD.FgColor
	ratio := bar.Ratio()
	if ratio <= 0.3 {
		fill = cfg.HUD.LowHP
	}
	if ratio > 0 {
		vector.DrawFilledRect(screen, x, y, w*ratio, h, fill, false)
	}
}
