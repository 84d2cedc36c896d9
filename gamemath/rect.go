package gamemath

// RectBody is an integer axis-aligned bounding box. Size is fixed at
// construction; only the position changes afterwards.
type RectBody struct {
	X, Y int
	w, h int
}

// NewRectBody creates a body from its top-left corner and size.
func NewRectBody(x, y, w, h int) RectBody {
	return RectBody{X: x, Y: y, w: w, h: h}
}

// Width returns the body width.
func (r RectBody) Width() int { return r.w }

// Height returns the body height.
func (r RectBody) Height() int { return r.h }

func (r RectBody) Left() int   { return r.X }
func (r RectBody) Right() int  { return r.X + r.w }
func (r RectBody) Top() int    { return r.Y }
func (r RectBody) Bottom() int { return r.Y + r.h }

// CenterX returns the horizontal center, rounded down.
func (r RectBody) CenterX() int { return r.X + r.w/2 }

// CenterY returns the vertical center, rounded down.
func (r RectBody) CenterY() int { return r.Y + r.h/2 }

// Center returns the center point of the body.
func (r RectBody) Center() (int, int) {
	return r.CenterX(), r.CenterY()
}

// Overlaps reports whether two bodies intersect. Bodies whose edges touch
// count as overlapping.
func (r RectBody) Overlaps(other RectBody) bool {
	if r.Right() < other.Left() || other.Right() < r.Left() {
		return false
	}
	if r.Bottom() < other.Top() || other.Bottom() < r.Top() {
		return false
	}
	return true
}

// SetPosition moves the top-left corner to (x, y).
func (r *RectBody) SetPosition(x, y int) {
	r.X = x
	r.Y = y
}

// Move offsets the body by (dx, dy).
func (r *RectBody) Move(dx, dy int) {
	r.X += dx
	r.Y += dy
}

// Clamp restricts the top-left corner to [minX, maxX] x [minY, maxY].
func (r *RectBody) Clamp(minX, maxX, minY, maxY int) {
	r.X = ClampInt(r.X, minX, maxX)
	r.Y = ClampInt(r.Y, minY, maxY)
}

// ClampInt restricts val to [lo, hi]. The lower bound wins when lo > hi.
func ClampInt(val, lo, hi int) int {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}
