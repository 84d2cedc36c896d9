package gamemath

// Bounds is the playfield size in pixels.
type Bounds struct {
	Width, Height int
}

// Directions holds the four directional flags read for one frame.
type Directions struct {
	Up, Down, Left, Right bool
}

// MovePlayer applies one frame of keyboard movement and keeps the body
// fully inside the playfield. Axes are independent, so diagonal movement
// is faster than straight movement.
func MovePlayer(body RectBody, speed int, dirs Directions, bounds Bounds) RectBody {
	if dirs.Left {
		body.X -= speed
	}
	if dirs.Right {
		body.X += speed
	}
	if dirs.Up {
		body.Y -= speed
	}
	if dirs.Down {
		body.Y += speed
	}

	body.Clamp(0, bounds.Width-body.Width(), 0, bounds.Height-body.Height())
	return body
}

// Difficulty maps the current score to the enemy speed scalar.
func Difficulty(score int) float64 {
	return 1.0 + float64(score)*0.03
}
