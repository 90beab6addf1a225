package components

import (
	"github.com/automoto/tileleap/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // Ticks spent in CurrentState
}

// Set switches state and resets the timer. Setting the current state again
// only advances the timer.
func (s *StateData) Set(state config.StateID) {
	if s.CurrentState == state {
		s.StateTimer++
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
