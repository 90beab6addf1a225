package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/tileleap/assets/animations"
	"github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

const levelsDir = "levels"

// LevelsFS exposes the embedded levels for tools and tests.
func LevelsFS() fs.FS {
	return assetFS
}

// LoadLevels parses every embedded level, sorted by name.
func LoadLevels() ([]*leveldata.Level, error) {
	byName, names, err := leveldata.LoadAll(assetFS, levelsDir)
	if err != nil {
		return nil, err
	}
	levels := make([]*leveldata.Level, 0, len(names))
	for _, name := range names {
		levels = append(levels, byName[name])
	}
	return levels, nil
}

// MustLoadLevels is LoadLevels for setup code that cannot continue without
// levels.
func MustLoadLevels() []*leveldata.Level {
	levels, err := LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	for _, l := range levels {
		log.Printf("level %s: %dx%d px, %d colliders, %d enemy spawns",
			l.Name, l.Width, l.Height, len(l.Colliders), len(l.EnemySpawns))
	}
	return levels
}

// MustLoadLevel loads a single embedded level by stem name, e.g. "level_1".
func MustLoadLevel(name string) *leveldata.Level {
	level, err := leveldata.Load(assetFS, path.Join(levelsDir, name+".tmx"))
	if err != nil {
		panic(err)
	}
	return level
}

// NewAnimations builds an animator over the clips of a character key
// (e.g. "player") from config.CharacterAnimations.
func NewAnimations(key string) (*animations.Animator, error) {
	defs, ok := config.CharacterAnimations[key]
	if !ok {
		return nil, fmt.Errorf("no animation definitions for %q", key)
	}
	clips := make(map[config.StateID]animations.Clip, len(defs))
	for state, def := range defs {
		clips[state] = animations.ClipFrom(def)
	}
	return animations.NewAnimator(clips), nil
}
