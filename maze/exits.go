package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

const (
	minExits          = 3
	maxExits          = 4
	minExitSeparation = 2
)

// ExitSet is the ordered collection of goal cells of a maze.
type ExitSet struct {
	cells   []Cell
	members mapset.Set[Cell]
}

// NewExitSet builds an exit set, dropping duplicate cells.
func NewExitSet(cells ...Cell) ExitSet {
	e := ExitSet{members: mapset.New[Cell]()}
	for _, c := range cells {
		if e.members.Has(c) {
			continue
		}
		e.members.Put(c)
		e.cells = append(e.cells, c)
	}
	return e
}

// Contains reports whether c is an exit.
func (e ExitSet) Contains(c Cell) bool {
	return e.members.Has(c)
}

// Len returns the number of exits.
func (e ExitSet) Len() int {
	return len(e.cells)
}

// Cells returns a copy of the exits in selection order.
func (e ExitSet) Cells() []Cell {
	cells := make([]Cell, len(e.cells))
	copy(cells, e.cells)
	return cells
}

// NearestDistance returns the Manhattan distance from c to the closest exit.
// ok is false when the set is empty.
func (e ExitSet) NearestDistance(c Cell) (dist int, ok bool) {
	for i, exit := range e.cells {
		if d := c.Manhattan(exit); i == 0 || d < dist {
			dist = d
		}
	}
	return dist, len(e.cells) > 0
}

// selectExits picks three or four cells on the right and bottom edges that are
// spread apart. The separation starts at size/3 and is relaxed one step at a
// time, down to minExitSeparation, when not enough exits fit.
func selectExits(size int, rng *rand.Rand) ExitSet {
	numExits := minExits + rng.Intn(maxExits-minExits+1)
	return spreadExits(size, numExits, rng)
}

// spreadExits picks up to numExits candidates at least size/3 apart, relaxing
// the separation when the first pass falls short.
func spreadExits(size, numExits int, rng *rand.Rand) ExitSet {
	minDistance := size / 3

	var selected []Cell
	pool := exitCandidates(size)
	for len(selected) < numExits && len(pool) > 0 {
		i := rng.Intn(len(pool))
		candidate := pool[i]
		if farFromAll(candidate, selected, minDistance) {
			selected = append(selected, candidate)
		}

		pool = append(pool[:i], pool[i+1:]...)
		kept := pool[:0]
		for _, pos := range pool {
			if pos.Manhattan(candidate) >= minDistance {
				kept = append(kept, pos)
			}
		}
		pool = kept
	}

	for len(selected) < numExits && minDistance > minExitSeparation {
		minDistance--
		for _, pos := range exitCandidates(size) {
			if len(selected) >= numExits {
				break
			}
			if farFromAll(pos, selected, minDistance) {
				selected = append(selected, pos)
			}
		}
	}

	return NewExitSet(selected...)
}

// exitCandidates lists the right column then the bottom row, skipping cells
// whose coordinate sum is within size/2 of the origin.
func exitCandidates(size int) []Cell {
	last := size - 1
	candidates := make([]Cell, 0, 2*size-1)
	for y := 0; y < size; y++ {
		candidates = append(candidates, Cell{X: last, Y: y})
	}
	for x := 0; x < last; x++ {
		candidates = append(candidates, Cell{X: x, Y: last})
	}

	kept := candidates[:0]
	for _, c := range candidates {
		if c.X+c.Y > size/2 {
			kept = append(kept, c)
		}
	}
	return kept
}

func farFromAll(c Cell, others []Cell, minDistance int) bool {
	for _, o := range others {
		if c.Manhattan(o) < minDistance {
			return false
		}
	}
	return true
}
