package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// carveBacktracker builds a spanning tree with a randomized depth-first walk
// from the start cell, driven by an explicit stack.
func carveBacktracker(size int, rng *rand.Rand) (*Grid, error) {
	g, err := New(size)
	if err != nil {
		return nil, err
	}

	visited := mapset.New[Cell]()
	visited.Put(Start())
	stack := []Cell{Start()}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		directions := Directions
		rng.Shuffle(len(directions), func(i, j int) {
			directions[i], directions[j] = directions[j], directions[i]
		})

		carved := false
		for _, d := range directions {
			next := current.Step(d)
			if !g.InBounds(next) || visited.Has(next) {
				continue
			}
			g.CarvePassage(current, next)
			visited.Put(next)
			stack = append(stack, next)
			carved = true
			break
		}
		if !carved {
			pop(&stack)
		}
	}

	return g, nil
}
