package maze

import (
	"fmt"
	"strings"
)

// Cell identifies one square of the grid by its column (X) and row (Y).
type Cell struct {
	X int // Column index, growing to the right
	Y int // Row index, growing downward
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the adjacent cell in direction d. The result may be out of bounds.
func (c Cell) Step(d Direction) Cell {
	v := d.Vector()
	return Cell{X: c.X + v.X, Y: c.Y + v.Y}
}

// Manhattan returns the sum of absolute coordinate differences between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// directionTo returns the direction leading from c to the adjacent cell o.
func (c Cell) directionTo(o Cell) (Direction, bool) {
	for _, d := range Directions {
		if c.Step(d) == o {
			return d, true
		}
	}
	return 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four grid headings. The numeric value doubles as the
// wall bit index, and clockwise rotation is +1 modulo 4.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in wall-bit order.
var Directions = [4]Direction{Up, Right, Down, Left}

var directionTable = [4]struct {
	name   string
	vector Cell
}{
	Up:    {name: "Up", vector: Cell{X: 0, Y: -1}},
	Right: {name: "Right", vector: Cell{X: 1, Y: 0}},
	Down:  {name: "Down", vector: Cell{X: 0, Y: 1}},
	Left:  {name: "Left", vector: Cell{X: -1, Y: 0}},
}

// Vector returns the unit movement for the direction.
func (d Direction) Vector() Cell {
	return directionTable[d&3].vector
}

// Bit returns the wall mask bit blocking movement in this direction.
func (d Direction) Bit() WallMask {
	return 1 << (d & 3)
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// Clockwise returns the direction to the right of d.
func (d Direction) Clockwise() Direction {
	return (d + 1) & 3
}

// CounterClockwise returns the direction to the left of d.
func (d Direction) CounterClockwise() Direction {
	return (d + 3) & 3
}

func (d Direction) String() string {
	if d > Left {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionTable[d].name
}

// ParseDirection maps a direction name such as "Up" or "up" back to its value.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(directionTable[d].name, s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
