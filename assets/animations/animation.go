package animations

import "github.com/automoto/tileleap/config"

// Clip is a run of sprite sheet frames shown for a fixed number of ticks
// each.
type Clip struct {
	First int
	Last  int
	Step  int
	Ticks float32 // Ticks a frame stays up; 0 holds the first frame
	Hold  bool    // Stop on Last instead of wrapping to First
}

// ClipFrom converts a configured animation definition.
func ClipFrom(def config.AnimationDef) Clip {
	step := def.Step
	if step <= 0 {
		step = 1
	}
	return Clip{
		First: def.First,
		Last:  def.Last,
		Step:  step,
		Ticks: def.Speed,
		Hold:  def.Hold,
	}
}

// Animator plays one of a character's clips at a time, keyed by state.
type Animator struct {
	clips   map[config.StateID]Clip
	state   config.StateID
	playing bool
	frame   int
	wait    float32

	// Looped is set once the current clip has run past its last frame.
	Looped bool
}

func NewAnimator(clips map[config.StateID]Clip) *Animator {
	return &Animator{
		clips: clips,
		state: config.StateNone,
	}
}

// Play switches to the clip for state. With ignoreIfPlaying the clip keeps
// its place when state is already the one playing; otherwise it starts
// over. A state without a clip stops playback.
func (a *Animator) Play(state config.StateID, ignoreIfPlaying bool) {
	if ignoreIfPlaying && a.state == state {
		return
	}

	a.state = state
	a.Looped = false
	clip, ok := a.clips[state]
	a.playing = ok
	if !ok {
		return
	}
	a.frame = clip.First
	a.wait = clip.Ticks
}

func (a *Animator) Update() {
	if !a.playing {
		return
	}
	clip := a.clips[a.state]
	if clip.Ticks <= 0 {
		return
	}

	a.wait--
	if a.wait >= 0 {
		return
	}
	a.wait = clip.Ticks
	a.frame += clip.Step
	if a.frame > clip.Last {
		a.Looped = true
		if clip.Hold {
			a.frame = clip.Last
		} else {
			a.frame = clip.First
		}
	}
}

func (a *Animator) State() config.StateID { return a.state }
func (a *Animator) Playing() bool         { return a.playing }
func (a *Animator) Frame() int            { return a.frame }
