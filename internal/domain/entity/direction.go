package entity

// Direction is one of the four cardinal headings
type Direction int32

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// directionDeltas maps a direction to its (dx, dy) step. Y grows downward.
var directionDeltas = [...][2]int{
	DirUp:    {0, -1},
	DirDown:  {0, 1},
	DirLeft:  {-1, 0},
	DirRight: {1, 0},
}

var directionOpposites = [...]Direction{
	DirUp:    DirDown,
	DirDown:  DirUp,
	DirLeft:  DirRight,
	DirRight: DirLeft,
}

// Valid reports whether d is one of the four defined directions
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Delta returns the one-cell offset for the direction
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return directionOpposites[d]
}

// Step moves c one cell in direction d (unwrapped)
func (d Direction) Step(c Cell) Cell {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}
