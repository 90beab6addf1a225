// Package enemies maps spawn type names from level data to enemy
// behaviors. Each kind is one concrete type implementing
// components.EnemyBehavior.
package enemies

import (
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/tileleap/components"
	"github.com/automoto/tileleap/config"
)

// ErrUnknownEnemyType is returned for spawn types with no registered
// constructor or no configuration.
var ErrUnknownEnemyType = errors.New("unknown enemy type")

// Constructor builds a fresh behavior for one spawned enemy.
type Constructor func(cfg config.EnemyTypeConfig) components.EnemyBehavior

var registry = map[string]Constructor{}

// Register adds a constructor under a spawn type name. It panics on
// duplicates since registration happens from init.
func Register(name string, ctor Constructor) {
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("enemy type %s registered twice", name))
	}
	registry[name] = ctor
}

// Lookup returns the constructor for a spawn type.
func Lookup(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnemyType, name)
	}
	return ctor, nil
}

// New builds the behavior for a spawn type together with its tuning from
// config.Enemy.
func New(name string) (components.EnemyBehavior, config.EnemyTypeConfig, error) {
	ctor, err := Lookup(name)
	if err != nil {
		return nil, config.EnemyTypeConfig{}, err
	}
	typeCfg, ok := config.Enemy.Types[name]
	if !ok {
		return nil, config.EnemyTypeConfig{}, fmt.Errorf("%w: %q has no configuration", ErrUnknownEnemyType, name)
	}
	return ctor(typeCfg), typeCfg, nil
}

// Types lists the registered spawn type names.
func Types() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("Birdman", NewBirdman)
	Register("Snaky", NewSnaky)
}
