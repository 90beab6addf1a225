// Package leveldata parses TMX levels into plain collision and zone data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import "errors"

// Layer and object names read from TMX files.
const (
	CollidersLayer = "platform_colliders"
	ZonesGroup     = "player_zones"
	SpawnsGroup    = "enemy_spawns"

	StartZone = "startZone"
	EndZone   = "endZone"
)

// ErrMissingZone is returned when a level has no startZone or endZone.
var ErrMissingZone = errors.New("missing zone")

// Level holds everything the runtime needs from a TMX level file.
type Level struct {
	Name       string
	Width      int // pixels
	Height     int // pixels
	TileWidth  int
	TileHeight int

	Colliders   []SolidRect
	Start       Zone
	End         Zone
	EnemySpawns []EnemySpawn
}

// SolidRect is a collision tile. OneWay tiles only block from above.
type SolidRect struct {
	X, Y, W, H float64
	OneWay     bool
}

// Zone is a named region from the player_zones layer. Point objects have a
// zero size.
type Zone struct {
	Name       string
	X, Y, W, H float64
}

// EnemySpawn is a spawn point from the enemy_spawns layer.
type EnemySpawn struct {
	Type string
	X, Y float64
}
