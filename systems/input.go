package systems

import (
	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollInput reads keyboard and gamepad state into a snapshot. It is the
// only place the game touches raw input.
func PollInput() components.InputSnapshot {
	var snap components.InputSnapshot

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				snap[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					snap[actionID] = true
				}
			}
		}
	}

	// Left stick doubles as the d-pad
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -cfg.Input.AnalogDeadzone {
			snap[cfg.ActionMoveLeft] = true
		}
		if x > cfg.Input.AnalogDeadzone {
			snap[cfg.ActionMoveRight] = true
		}
	}

	return snap
}

// SetInput hands a snapshot to every entity that reads input. Call it once
// before each ecs.Update.
func SetInput(e *ecs.ECS, snap components.InputSnapshot) {
	components.Input.Each(e.World, func(entry *donburi.Entry) {
		components.Input.Get(entry).Push(snap)
	})
}
