package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	// Only tiles whose tileset entry has collides=true become colliders
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != CollidersLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil || !tilesetTile.Properties.GetBool("collides") {
					continue
				}
				level.Colliders = append(level.Colliders, SolidRect{
					X:      float64(x) * tileW,
					Y:      float64(y) * tileH,
					W:      tileW,
					H:      tileH,
					OneWay: tilesetTile.Properties.GetBool("oneway"),
				})
			}
		}
		break
	}

	var haveStart, haveEnd bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case ZonesGroup:
			for _, o := range og.Objects {
				zone := Zone{Name: o.Name, X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				switch o.Name {
				case StartZone:
					level.Start, haveStart = zone, true
				case EndZone:
					level.End, haveEnd = zone, true
				}
			}
		case SpawnsGroup:
			for _, o := range og.Objects {
				// Tiled 1.9+ writes class=, older files use type=
				enemyType := o.Class
				if enemyType == "" {
					enemyType = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					Type: enemyType,
					X:    o.X,
					Y:    o.Y,
				})
			}
		}
	}

	if !haveStart {
		return nil, fmt.Errorf("%s: %w %q", tmxPath, ErrMissingZone, StartZone)
	}
	if !haveEnd {
		return nil, fmt.Errorf("%s: %w %q", tmxPath, ErrMissingZone, EndZone)
	}

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
