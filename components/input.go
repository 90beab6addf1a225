package components

import (
	cfg "github.com/automoto/tileleap/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// InputSnapshot is the level state of every action for one tick.
type InputSnapshot [cfg.ActionCount]bool

// InputData stores the current and previous tick's snapshots.
// JustPressed/JustReleased are computed on-demand by comparing them.
type InputData struct {
	Current  InputSnapshot
	Previous InputSnapshot
}

// Push makes snap the current snapshot.
func (i *InputData) Push(snap InputSnapshot) {
	i.Previous = i.Current
	i.Current = snap
}

// Action returns the state of a single action.
func (i *InputData) Action(action cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      i.Current[action],
		JustPressed:  i.Current[action] && !i.Previous[action],
		JustReleased: !i.Current[action] && i.Previous[action],
	}
}

var Input = donburi.NewComponentType[InputData]()
