package gamemath

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Offset returns the rectangle moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps reports whether r and o share any area. Rectangles that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// OverlapsX reports whether the horizontal spans of r and o intersect.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right()
}

// OverlapsY reports whether the vertical spans of r and o intersect.
func (r Rect) OverlapsY(o Rect) bool {
	return r.Y < o.Bottom() && o.Y < r.Bottom()
}

// FromBottomCenter builds a rectangle of size w x h whose bottom-centre sits
// at x, y (a sprite origin of 0.5, 1).
func FromBottomCenter(x, y, w, h float64) Rect {
	return Rect{X: x - w/2, Y: y - h, W: w, H: h}
}

// SweepX returns how far r can move horizontally by dx before it hits
// obstacle. The second result is false when the obstacle is not in the way.
func (r Rect) SweepX(dx float64, obstacle Rect) (float64, bool) {
	if dx == 0 || !r.OverlapsY(obstacle) {
		return dx, false
	}
	if dx > 0 {
		gap := obstacle.X - r.Right()
		if gap < 0 || gap >= dx {
			return dx, false
		}
		return gap, true
	}
	gap := r.X - obstacle.Right()
	if gap < 0 || gap >= -dx {
		return dx, false
	}
	return -gap, true
}

// SweepY returns how far r can move vertically by dy before it hits
// obstacle. probe extends a downward check so a resting body still reports
// contact with the surface below it; within the probe the body snaps onto
// the surface.
func (r Rect) SweepY(dy, probe float64, obstacle Rect) (float64, bool) {
	if !r.OverlapsX(obstacle) {
		return dy, false
	}
	if dy >= 0 {
		gap := obstacle.Y - r.Bottom()
		if gap < 0 || gap > dy+probe {
			return dy, false
		}
		return gap, true
	}
	gap := r.Y - obstacle.Bottom()
	if gap < 0 || gap >= -dy {
		return dy, false
	}
	return -gap, true
}
