package gamemath

import "testing"

func TestMovePlayerStaysInBounds(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}
	starts := []RectBody{
		NewRectBody(0, 0, 48, 48),
		NewRectBody(752, 552, 48, 48),
		NewRectBody(400, 300, 48, 48),
		NewRectBody(3, 549, 48, 48),
	}

	for _, start := range starts {
		for mask := 0; mask < 16; mask++ {
			dirs := Directions{
				Up:    mask&1 != 0,
				Down:  mask&2 != 0,
				Left:  mask&4 != 0,
				Right: mask&8 != 0,
			}
			body := start
			for frame := 0; frame < 200; frame++ {
				body = MovePlayer(body, 5, dirs, bounds)
				if body.X < 0 || body.X > bounds.Width-body.Width() ||
					body.Y < 0 || body.Y > bounds.Height-body.Height() {
					t.Fatalf("start=%+v dirs=%+v frame=%d: body out of bounds at (%d,%d)",
						start, dirs, frame, body.X, body.Y)
				}
			}
		}
	}
}

func TestMovePlayerDiagonalIsNotNormalized(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}
	body := MovePlayer(NewRectBody(100, 100, 48, 48), 5, Directions{Down: true, Right: true}, bounds)

	if body.X != 105 || body.Y != 105 {
		t.Fatalf("diagonal move = (%d,%d), want (105,105)", body.X, body.Y)
	}
}

func TestMovePlayerOpposingKeysCancel(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}
	body := MovePlayer(NewRectBody(100, 100, 48, 48), 5, Directions{Up: true, Down: true, Left: true, Right: true}, bounds)

	if body.X != 100 || body.Y != 100 {
		t.Fatalf("opposing keys moved body to (%d,%d)", body.X, body.Y)
	}
}

func TestDifficulty(t *testing.T) {
	if got := Difficulty(0); got != 1.0 {
		t.Fatalf("Difficulty(0) = %v, want 1.0", got)
	}
	if got := Difficulty(100); got < 3.999 || got > 4.001 {
		t.Fatalf("Difficulty(100) = %v, want 4.0", got)
	}

	prev := Difficulty(0)
	for score := 10; score <= 1000; score += 10 {
		d := Difficulty(score)
		if d <= prev {
			t.Fatalf("Difficulty not strictly increasing at score %d: %v <= %v", score, d, prev)
		}
		prev = d
	}
}
