package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/leveldata"
	"github.com/automoto/tileleap/prefabs"
	"github.com/automoto/tileleap/systems"
	"github.com/automoto/tileleap/systems/factory"
	"github.com/automoto/tileleap/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene plays a list of levels in order. Dying reloads the
// current level; finishing one moves on to the next, wrapping around.
type PlatformerScene struct {
	ecs        *ecs.ECS
	levels     []*leveldata.Level
	levelIndex int
	watcher    *prefabs.Watcher
	overlay    *ui.LevelCompleteUI
	once       sync.Once
	err        error
}

// NewPlatformerScene creates a scene starting at levelIndex. watcher may be
// nil; when set, prefab edits are applied and the level reloaded.
func NewPlatformerScene(levels []*leveldata.Level, levelIndex int, watcher *prefabs.Watcher) *PlatformerScene {
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}
	return &PlatformerScene{
		levels:     levels,
		levelIndex: levelIndex,
		watcher:    watcher,
	}
}

func (ps *PlatformerScene) Update() error {
	return ps.Step(systems.PollInput())
}

// Step runs one tick with the given input.
func (ps *PlatformerScene) Step(snap components.InputSnapshot) error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}

	if ps.drainPrefabEvents() {
		if err := ps.load(ps.levelIndex); err != nil {
			return err
		}
	}

	systems.SetInput(ps.ecs, snap)
	ps.ecs.Update()

	// The overlay is built on first draw
	if ps.overlay != nil && systems.IsLevelComplete(ps.ecs) {
		ps.overlay.Update(ps.levels[ps.levelIndex].Name, systems.AcceptsContinue(ps.ecs))
	}

	switch {
	case systems.ShouldRestart(ps.ecs):
		return ps.load(ps.levelIndex)
	case systems.ShouldAdvance(ps.ecs):
		next := (ps.levelIndex + 1) % len(ps.levels)
		systems.SaveLevelFinished(next)
		return ps.load(next)
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if !systems.IsLevelComplete(ps.ecs) {
		return
	}
	if ps.overlay == nil {
		ps.overlay = ui.NewLevelCompleteUI()
		ps.overlay.Update(ps.levels[ps.levelIndex].Name, systems.AcceptsContinue(ps.ecs))
	}
	ps.overlay.Draw(screen)
}

// ECS exposes the running world, mainly for tests.
func (ps *PlatformerScene) ECS() *ecs.ECS {
	ps.once.Do(ps.configure)
	return ps.ecs
}

func (ps *PlatformerScene) configure() {
	if len(ps.levels) == 0 {
		ps.err = fmt.Errorf("no levels to play")
		return
	}
	ps.err = ps.load(ps.levelIndex)
}

// load replaces the world with a fresh build of the level at index.
func (ps *PlatformerScene) load(index int) error {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input-driven toggles run even when the level is complete
	ecs.AddSystem(systems.UpdateDebug)

	// Game systems stop once the level is complete
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateClock))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateTint))
	ecs.AddSystem(systems.UpdateAnimation)
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateDeath))
	ecs.AddSystem(systems.UpdateLevelComplete)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	if err := factory.BuildLevel(ecs, ps.levels[index], index); err != nil {
		return err
	}

	ps.ecs = ecs
	ps.levelIndex = index
	return nil
}

// drainPrefabEvents applies every pending prefab change. It reports whether
// anything was applied.
func (ps *PlatformerScene) drainPrefabEvents() bool {
	if ps.watcher == nil {
		return false
	}

	changed := false
	for {
		select {
		case name, ok := <-ps.watcher.Events:
			if !ok {
				ps.watcher = nil
				return changed
			}
			if err := prefabs.ApplyFile(name); err != nil {
				log.Printf("prefab reload %s: %v", name, err)
				continue
			}
			log.Printf("prefab reloaded: %s", name)
			changed = true
		case err, ok := <-ps.watcher.Errors:
			if !ok {
				ps.watcher = nil
				return changed
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return changed
		}
	}
}
