package components

import (
	"github.com/automoto/tileleap/assets/animations"
	"github.com/automoto/tileleap/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Character string               // Key into config.CharacterAnimations
	Animator  *animations.Animator // nil for characters without clips
}

// SetAnimation plays the clip for state, leaving it alone when it is
// already playing.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.Animator == nil {
		return
	}
	a.Animator.Play(state, true)
}

var Animation = donburi.NewComponentType[AnimationData]()
