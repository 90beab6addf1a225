package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
	Hold  bool // Stay on the last frame once played
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:    {First: 0, Last: 8, Step: 1, Speed: 8},
		Running: {First: 11, Last: 16, Step: 1, Speed: 5},
		Jump:    {First: 17, Last: 23, Step: 1, Speed: 6},
		Hit:     {First: 0, Last: 2, Step: 1, Speed: 5},
		Die:     {First: 0, Last: 8, Step: 1, Speed: 5, Hold: true},
	},
	"birdman": {
		Idle: {First: 0, Last: 12, Step: 1, Speed: 8},
		Walk: {First: 13, Last: 21, Step: 1, Speed: 5},
		Jump: {First: 13, Last: 13, Step: 1, Speed: 0},
	},
	"snaky": {
		Idle: {First: 0, Last: 8, Step: 1, Speed: 8},
		Walk: {First: 9, Last: 16, Step: 1, Speed: 6},
		Jump: {First: 17, Last: 19, Step: 1, Speed: 6},
	},
}
