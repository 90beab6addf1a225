package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TintData drives the repeating damage pulse. Amount goes from 0 (normal
// colours) to 1 (fully white).
type TintData struct {
	Tween  *gween.Tween
	Amount float32
}

func (t *TintData) Active() bool { return t.Tween != nil }

// Clear stops the pulse and restores normal colours.
func (t *TintData) Clear() {
	t.Tween = nil
	t.Amount = 0
}

var Tint = donburi.NewComponentType[TintData]()
