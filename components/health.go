package components

import "github.com/yohamta/donburi"

// HealthBar receives the new health value every time an entity takes damage.
type HealthBar interface {
	Decrease(health int)
}

type HealthData struct {
	Current int
	Max     int
	Bar     HealthBar
}

var Health = donburi.NewComponentType[HealthData]()
