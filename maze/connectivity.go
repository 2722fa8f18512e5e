package maze

import (
	"github.com/spakin/disjoint"
	"github.com/zyedidia/generic/mapset"
)

// Connected reports whether every cell can reach every other through open
// passages. Each cell starts in its own set and the sets of cells joined by a
// carved wall are merged.
func (g *Grid) Connected() bool {
	reaches := make([]*disjoint.Element, len(g.walls))
	for i := range reaches {
		reaches[i] = disjoint.NewElement()
	}

	components := len(reaches)
	for _, c := range g.Cells() {
		for _, d := range []Direction{Right, Down} {
			if !g.CanMove(c, d) {
				continue
			}
			a, b := reaches[g.index(c)], reaches[g.index(c.Step(d))]
			if a.Find() == b.Find() {
				continue
			}
			disjoint.Union(a, b)
			components--
		}
	}
	return components == 1
}

// Reachable returns the number of cells a car starting at from can visit.
func (g *Grid) Reachable(from Cell) int {
	visited := mapset.New[Cell]()
	stack := []Cell{from}
	visited.Put(from)

	for len(stack) > 0 {
		cell := pop(&stack)
		for _, n := range g.Neighbors(cell) {
			if !visited.Has(n) {
				visited.Put(n)
				stack = append(stack, n)
			}
		}
	}
	return visited.Size()
}

// pop removes and returns the last element of a stack of cells.
func pop(s *[]Cell) Cell {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
