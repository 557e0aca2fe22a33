package physics

import "github.com/vovakirdan/paddleball/internal/geom"

// HorizontalMode selects how the left and right keys combine.
type HorizontalMode string

const (
	// HorizontalAdditive: left subtracts and right adds, so holding both cancels.
	HorizontalAdditive HorizontalMode = "additive"

	// HorizontalLegacy: left subtracts but right assigns +1, so right wins
	// when both are held.
	HorizontalLegacy HorizontalMode = "legacy"
)

// Valid reports whether m is a known mode.
func (m HorizontalMode) Valid() bool {
	return m == HorizontalAdditive || m == HorizontalLegacy
}

// Keys is the directional key state for one tick.
type Keys struct {
	Left, Right, Up, Down bool
}

// PaddleDirection builds the direction vector from the held keys.
// Each component is in {-1, 0, 1}.
func PaddleDirection(k Keys, mode HorizontalMode) geom.Vec2 {
	var dir geom.Vec2

	if k.Left {
		dir.X -= 1
	}
	if k.Right {
		if mode == HorizontalLegacy {
			dir.X = 1
		} else {
			dir.X += 1
		}
	}
	if k.Up {
		dir.Y += 1
	}
	if k.Down {
		dir.Y -= 1
	}

	return dir
}

// MovePaddle moves pos by dir * speed * dt. No acceleration is applied;
// a zero direction leaves the paddle where it is.
func MovePaddle(pos, dir geom.Vec2, speed, dt float64) geom.Vec2 {
	if dt <= 0 {
		return pos
	}
	return pos.Add(dir.Scale(speed * dt))
}
