package components

import (
	"github.com/automoto/tileleap/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// Sides records which edges of a body are in contact with something.
type Sides struct {
	Up, Down, Left, Right bool
}

func (s Sides) Any() bool { return s.Up || s.Down || s.Left || s.Right }

type PhysicsData struct {
	VelocityX    float64 // pixels per second
	VelocityY    float64
	Gravity      float64
	MaxFallSpeed float64

	// Set by the collision pass. Blocked covers static geometry and world
	// bounds, Touching also includes other bodies.
	OnGround *resolv.Object
	Blocked  Sides
	Touching Sides

	// Impulse replaces the velocity at the start of the next physics pass,
	// before gravity is integrated.
	Impulse *Vector

	// WorldBounds keeps the body inside a rectangle when set.
	WorldBounds *gamemath.Rect
}

// Grounded reports whether the last collision pass found solid ground
// directly below the body.
func (p *PhysicsData) Grounded() bool {
	return p.Blocked.Down
}

// ApplyImpulse sets the velocity now and queues it to be re-applied ahead
// of the next gravity step.
func (p *PhysicsData) ApplyImpulse(vx, vy float64) {
	p.VelocityX = vx
	p.VelocityY = vy
	p.Impulse = &Vector{X: vx, Y: vy}
}

var Physics = donburi.NewComponentType[PhysicsData]()
