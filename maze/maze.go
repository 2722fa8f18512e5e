/*
Package maze provides the square grid maze used by the car simulation.

Every cell carries a 4-bit wall mask (bit 0 blocks upward movement, bit 1
rightward, bit 2 downward, bit 3 leftward). Passages are always carved on both
sides of a shared wall; the only one-sided change is opening a boundary cell's
outward wall to mark an entrance or exit.

The package also generates mazes with recursive division, a randomized
depth-first backtracker or Wilson's algorithm, and selects the exit set.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	minMazeDimension = 2
	maxMazeDimension = 50
)

var (
	ErrInvalidSize    = errors.New("invalid maze size")
	ErrAsymmetricWall = errors.New("asymmetric wall between adjacent cells")
)

// WallMask is the set of walls around a cell.
type WallMask uint8

// AllWalls is the mask of a fully enclosed cell.
const AllWalls WallMask = 0b1111

// Has reports whether the wall facing d is present.
func (w WallMask) Has(d Direction) bool {
	return w&d.Bit() != 0
}

// Grid is a size × size maze stored row-major.
type Grid struct {
	size  int
	walls []WallMask
}

// New allocates a grid with every wall present.
func New(size int) (*Grid, error) {
	if size < minMazeDimension || size > maxMazeDimension {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidSize, size, minMazeDimension, maxMazeDimension)
	}

	g := &Grid{
		size:  size,
		walls: make([]WallMask, size*size),
	}
	for i := range g.walls {
		g.walls[i] = AllWalls
	}
	return g, nil
}

// newOpen allocates a grid where only the outer boundary is walled.
func newOpen(size int) (*Grid, error) {
	g, err := New(size)
	if err != nil {
		return nil, err
	}
	for _, c := range g.Cells() {
		var mask WallMask
		for _, d := range Directions {
			if !g.InBounds(c.Step(d)) {
				mask |= d.Bit()
			}
		}
		g.walls[g.index(c)] = mask
	}
	return g, nil
}

// Size returns the number of cells along one side.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

func (g *Grid) index(c Cell) int {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("maze: cell %s outside %dx%d grid", c, g.size, g.size))
	}
	return c.Y*g.size + c.X
}

// WallMask returns the walls of c. It panics if c is out of bounds.
func (g *Grid) WallMask(c Cell) WallMask {
	return g.walls[g.index(c)]
}

// CanMove reports whether a car at c may step in direction d: the destination
// must be in bounds and c's wall facing d must be clear.
func (g *Grid) CanMove(c Cell, d Direction) bool {
	if !g.InBounds(c.Step(d)) {
		return false
	}
	return !g.WallMask(c).Has(d)
}

// Neighbors returns the cells reachable from c in one step, in Up, Right,
// Down, Left order.
func (g *Grid) Neighbors(c Cell) []Cell {
	result := make([]Cell, 0, 4)
	for _, d := range Directions {
		if g.CanMove(c, d) {
			result = append(result, c.Step(d))
		}
	}
	return result
}

// CarvePassage removes the wall shared by the adjacent cells a and b, on both sides.
func (g *Grid) CarvePassage(a, b Cell) {
	d := g.mustDirection(a, b)
	g.walls[g.index(a)] &^= d.Bit()
	g.walls[g.index(b)] &^= d.Opposite().Bit()
}

// BuildWall restores the wall shared by the adjacent cells a and b, on both sides.
func (g *Grid) BuildWall(a, b Cell) {
	d := g.mustDirection(a, b)
	g.walls[g.index(a)] |= d.Bit()
	g.walls[g.index(b)] |= d.Opposite().Bit()
}

// OpenBoundary clears the outward wall of a boundary cell. It panics if the
// neighbor of c in direction d is inside the grid, since interior walls must
// be carved from both sides.
func (g *Grid) OpenBoundary(c Cell, d Direction) {
	if g.InBounds(c.Step(d)) {
		panic(fmt.Sprintf("maze: %s wall of %s is not on the boundary", d, c))
	}
	g.walls[g.index(c)] &^= d.Bit()
}

func (g *Grid) mustDirection(a, b Cell) Direction {
	g.index(a)
	g.index(b)
	d, ok := a.directionTo(b)
	if !ok {
		panic(fmt.Sprintf("maze: cells %s and %s are not adjacent", a, b))
	}
	return d
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, len(g.walls))
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	walls := make([]WallMask, len(g.walls))
	copy(walls, g.walls)
	return &Grid{size: g.size, walls: walls}
}

// Masks returns a copy of the wall masks in row-major order.
func (g *Grid) Masks() []WallMask {
	return g.Clone().walls
}

// CheckSymmetry verifies that every interior wall is recorded identically on
// both of its sides.
func (g *Grid) CheckSymmetry() error {
	for _, c := range g.Cells() {
		for _, d := range []Direction{Right, Down} {
			n := c.Step(d)
			if !g.InBounds(n) {
				continue
			}
			if g.WallMask(c).Has(d) != g.WallMask(n).Has(d.Opposite()) {
				return fmt.Errorf("%w: %s %s / %s %s", ErrAsymmetricWall, c, d, n, d.Opposite())
			}
		}
	}
	return nil
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	return g.Render(func(Cell) string { return "   " })
}

// Render draws the maze, asking label for the three-character body of each cell.
func (g *Grid) Render(label func(Cell) string) string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for x := 0; x < g.size; x++ {
		if g.WallMask(Cell{X: x, Y: 0}).Has(Up) {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for y := 0; y < g.size; y++ {
		// Cell row, led by the west wall of the first column
		if g.WallMask(Cell{X: 0, Y: y}).Has(Left) {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < g.size; x++ {
			c := Cell{X: x, Y: y}
			b.WriteString(label(c))
			if g.WallMask(c).Has(Right) {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		// Wall row
		b.WriteString("+")
		for x := 0; x < g.size; x++ {
			if g.WallMask(Cell{X: x, Y: y}).Has(Down) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
