package systems

import (
	"log"

	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/tags"
	"github.com/yohamta/donburi/ecs"
)

// Ticks the overlay stays up before a jump press is accepted, so the jump
// that carried the player over the line does not skip it.
const levelCompleteInputDelay = 30

// UpdateLevelComplete waits for a jump press once the overlay is shown.
func UpdateLevelComplete(e *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete || levelComplete.Advance {
		return
	}
	levelComplete.Ticks++
	if levelComplete.Ticks < levelCompleteInputDelay {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok || !playerEntry.HasComponent(components.Input) {
		return
	}
	if components.Input.Get(playerEntry).Action(cfg.ActionJump).JustPressed {
		log.Printf("continuing after level complete")
		levelComplete.Advance = true
	}
}

// CompleteLevel shows the level complete overlay.
func CompleteLevel(e *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(e)
	if levelComplete.IsComplete {
		return
	}
	levelComplete.IsComplete = true
	levelComplete.Ticks = 0
	log.Printf("level complete")
}

// AcceptsContinue reports whether the overlay is waiting for a jump press.
func AcceptsContinue(e *ecs.ECS) bool {
	levelComplete := GetOrCreateLevelComplete(e)
	return levelComplete.IsComplete && levelComplete.Ticks >= levelCompleteInputDelay
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.LevelComplete))
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{
			IsComplete: false,
		})
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	levelComplete := GetOrCreateLevelComplete(e)
	return levelComplete.IsComplete
}

// ShouldAdvance reports whether the player has dismissed the overlay.
func ShouldAdvance(e *ecs.ECS) bool {
	return GetOrCreateLevelComplete(e).Advance
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}
