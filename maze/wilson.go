package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// carveWilson builds a uniform spanning tree with Wilson's algorithm: random
// walks from unvisited cells are loop-erased and grafted onto the tree.
func carveWilson(size int, rng *rand.Rand) (*Grid, error) {
	g, err := New(size)
	if err != nil {
		return nil, err
	}

	visited := mapset.New[Cell]()
	visited.Put(g.randomCell(rng))

	for visited.Size() < size*size {
		start := g.randomUnvisitedCell(visited, rng)
		exits := g.randomWalk(start, visited, rng)

		// Follow the last exit taken from each cell; loops were overwritten.
		for cell := start; !visited.Has(cell); {
			next := cell.Step(exits[cell])
			g.CarvePassage(cell, next)
			visited.Put(cell)
			cell = next
		}
	}

	return g, nil
}

// randomCell picks a uniformly random cell.
func (g *Grid) randomCell(rng *rand.Rand) Cell {
	return Cell{X: rng.Intn(g.size), Y: rng.Intn(g.size)}
}

// randomUnvisitedCell selects a random cell outside the tree.
func (g *Grid) randomUnvisitedCell(visited mapset.Set[Cell], rng *rand.Rand) Cell {
	for {
		c := g.randomCell(rng)
		if !visited.Has(c) {
			return c
		}
	}
}

// randomWalk wanders from start until it touches the tree, recording the last
// direction taken out of every cell on the way.
func (g *Grid) randomWalk(start Cell, visited mapset.Set[Cell], rng *rand.Rand) map[Cell]Direction {
	exits := make(map[Cell]Direction)
	cell := start

	for !visited.Has(cell) {
		d := Directions[rng.Intn(len(Directions))]
		next := cell.Step(d)
		if !g.InBounds(next) {
			continue
		}
		exits[cell] = d
		cell = next
	}

	return exits
}
