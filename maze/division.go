package maze

import "math/rand"

// region is a rectangle of cells still to be subdivided.
type region struct {
	x, y          int
	width, height int
}

// divide builds a maze by recursive division: starting from an open field it
// splits each region along its longer axis with a wall that keeps one gap.
func divide(size int, rng *rand.Rand) (*Grid, error) {
	g, err := newOpen(size)
	if err != nil {
		return nil, err
	}
	divideRegion(g, region{x: 0, y: 0, width: size, height: size}, rng)
	return g, nil
}

func divideRegion(g *Grid, r region, rng *rand.Rand) {
	if r.width < 2 || r.height < 2 {
		return
	}

	if r.width > r.height {
		// Vertical wall on the west side of column split.
		split := r.x + 1 + rng.Intn(r.width-1)
		gap := r.y + rng.Intn(r.height)
		for row := r.y; row < r.y+r.height; row++ {
			if row != gap {
				g.BuildWall(Cell{X: split - 1, Y: row}, Cell{X: split, Y: row})
			}
		}
		divideRegion(g, region{x: r.x, y: r.y, width: split - r.x, height: r.height}, rng)
		divideRegion(g, region{x: split, y: r.y, width: r.x + r.width - split, height: r.height}, rng)
		return
	}

	// Horizontal wall on the north side of row split.
	split := r.y + 1 + rng.Intn(r.height-1)
	gap := r.x + rng.Intn(r.width)
	for col := r.x; col < r.x+r.width; col++ {
		if col != gap {
			g.BuildWall(Cell{X: col, Y: split - 1}, Cell{X: col, Y: split})
		}
	}
	divideRegion(g, region{x: r.x, y: r.y, width: r.width, height: split - r.y}, rng)
	divideRegion(g, region{x: r.x, y: split, width: r.width, height: r.y + r.height - split}, rng)
}
