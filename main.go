package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/tileleap/assets"
	"github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/fonts"
	"github.com/automoto/tileleap/leveldata"
	"github.com/automoto/tileleap/prefabs"
	"github.com/automoto/tileleap/scenes"
	"github.com/automoto/tileleap/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "", "level to start on, e.g. level_1")
	flag.BoolVar(&config.Debug.ShowColliders, "debug", false, "show collider outlines")
	flag.BoolVar(&config.Debug.WatchPrefabs, "watch", false, "reload prefabs/*.yaml when they change")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	for _, name := range []string{prefabs.PlayerFile, prefabs.EnemiesFile} {
		if mod, ok := prefabs.ModTime(name); ok {
			log.Printf("prefab %s loaded from disk (modified %s)", name, mod.Format(time.RFC3339))
		}
	}
	if err := prefabs.ApplyAll(); err != nil {
		log.Fatalf("Failed to apply prefabs: %v", err)
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	if err := systems.InitPersistence("tileleap"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	start := levelIndex(levels, *levelName)
	if *levelName == "" {
		if saved, err := systems.LoadProgress(); err != nil {
			log.Printf("Warning: Could not load game progress: %v", err)
		} else if saved != nil && saved.LevelIndex < len(levels) {
			log.Printf("resuming on level %d (%d finished)", saved.LevelIndex, saved.LevelsFinished)
			start = saved.LevelIndex
		}
	}

	var watcher *prefabs.Watcher
	if config.Debug.WatchPrefabs {
		watcher, err = prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Fatalf("Failed to watch prefabs: %v", err)
		}
		defer watcher.Close()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("tileleap")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewPlatformerScene(levels, start, watcher))); err != nil {
		log.Fatal(err)
	}
}

// levelIndex finds a level by name, falling back to the first one.
func levelIndex(levels []*leveldata.Level, name string) int {
	if name == "" {
		return 0
	}
	for i, l := range levels {
		if l.Name == name {
			return i
		}
	}
	log.Fatalf("Unknown level %q", name)
	return 0
}
