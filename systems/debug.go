package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/fonts"
	"github.com/automoto/tileleap/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}

	v, ok := currentView(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
			continue
		}

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255} // Grey
		case obj.HasTags(tags.ResolvPlatform):
			c = color.RGBA{100, 180, 255, 255} // Light blue
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255} // Blue
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255} // Red
		case obj.HasTags(tags.ResolvEndOfLevel):
			c = color.RGBA{255, 255, 0, 255} // Yellow
		}

		x, y := v.toScreen(obj.X, obj.Y)
		w, h := v.scale(obj.W), v.scale(obj.H)

		// Draw outline
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	drawPlayerDebug(ecs, screen)
}

// drawPlayerDebug prints the player's movement state under the HUD.
func drawPlayerDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	health := components.Health.Get(playerEntry)

	line := fmt.Sprintf("state=%s hp=%d jumps=%d/%d v=(%.0f,%.0f) ground=%t",
		state.CurrentState, health.Current, player.JumpCount, player.ConsecutiveJumps,
		physics.VelocityX, physics.VelocityY, physics.Grounded())
	text.Draw(screen, line, fonts.Small.Get(), 10, screen.Bounds().Dy()-10, cfg.White)
}

// UpdateDebug toggles the collider overlay on the debug action.
func UpdateDebug(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !playerEntry.HasComponent(components.Input) {
		return
	}
	if components.Input.Get(playerEntry).Action(cfg.ActionDebug).JustPressed {
		cfg.Debug.ShowColliders = !cfg.Debug.ShowColliders
	}
}
