package types

// Direction represents the heading of the snek
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Offset returns the per-tick displacement for the direction
func (d Direction) Offset() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -StepSize} // Screen y grows downwards
	case Down:
		return Point{X: 0, Y: StepSize}
	case Left:
		return Point{X: -StepSize, Y: 0}
	case Right:
		return Point{X: StepSize, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// InputOrder is the order in which held keys are applied each tick.
// When several keys are held the last accepted one wins.
var InputOrder = [...]Direction{Right, Left, Down, Up}
