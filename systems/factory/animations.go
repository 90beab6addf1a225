package factory

import (
	"fmt"

	"github.com/automoto/tileleap/assets"
	"github.com/automoto/tileleap/components"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player", "birdman") which maps to a set of animation definitions in config.
func GenerateAnimations(key string) *components.AnimationData {
	animator, err := assets.NewAnimations(key)
	if err != nil {
		// Animation keys are compiled in, so a miss is a programming error.
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	return &components.AnimationData{
		Character: key,
		Animator:  animator,
	}
}
