package config

// StateID identifies an actor's movement/animation state.
type StateID int

const (
	StateNone StateID = iota - 1

	Idle
	Running
	Jump
	Hit
	Die
	Walk
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Running:   "run",
	Jump:      "jump",
	Hit:       "hit",
	Die:       "die",
	Walk:      "walk",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// EnemyKind tags the concrete behavior variant of an enemy.
type EnemyKind int

const (
	KindUnknown EnemyKind = iota
	KindBirdman
	KindSnaky
)

func (k EnemyKind) String() string {
	switch k {
	case KindBirdman:
		return "Birdman"
	case KindSnaky:
		return "Snaky"
	default:
		return "unknown"
	}
}
