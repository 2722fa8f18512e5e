// Package solver finds shortest routes from a start cell to the nearest exit
// of a maze with A* search.
package solver

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-mazecar/maze"
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

var (
	ErrNoPath           = errors.New("no path to any exit")
	ErrStartOutOfBounds = errors.New("start cell is outside the maze")
)

// Path is an ordered run of adjacent cells from the start to an exit, both included.
type Path []maze.Cell

// Moves returns the number of steps along the path.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Last returns the final cell of the path.
func (p Path) Last() (maze.Cell, bool) {
	if len(p) == 0 {
		return maze.Cell{}, false
	}
	return p[len(p)-1], true
}

// item is one frontier entry.
type item struct {
	cell maze.Cell
	g    int    // moves from the start
	f    int    // g plus the heuristic
	seq  uint64 // push order, breaks ties between equal f
}

func lessItem(a, b item) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// Solve runs A* from start with unit step cost. The heuristic is the Manhattan
// distance to the closest exit, which never overestimates, so the returned
// path is a shortest path to the nearest reachable exit.
func Solve(g *maze.Grid, start maze.Cell, exits maze.ExitSet) (Path, error) {
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}
	if exits.Len() == 0 {
		return nil, fmt.Errorf("%w: exit set is empty", ErrNoPath)
	}

	heuristic := func(c maze.Cell) int {
		d, _ := exits.NearestDistance(c)
		return d
	}

	var seq uint64
	open := heap.New[item](lessItem)
	open.Push(item{cell: start, g: 0, f: heuristic(start), seq: seq})

	closed := mapset.New[maze.Cell]()
	gScore := map[maze.Cell]int{start: 0}
	cameFrom := make(map[maze.Cell]maze.Cell)

	for open.Size() > 0 {
		current, _ := open.Pop()

		if exits.Contains(current.cell) {
			return reconstruct(cameFrom, start, current.cell), nil
		}
		if closed.Has(current.cell) {
			continue
		}
		closed.Put(current.cell)

		for _, next := range g.Neighbors(current.cell) {
			tentative := current.g + 1
			if best, seen := gScore[next]; seen && tentative >= best {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = current.cell
			seq++
			open.Push(item{cell: next, g: tentative, f: tentative + heuristic(next), seq: seq})
		}
	}

	return nil, fmt.Errorf("%w from %s", ErrNoPath, start)
}

// reconstruct walks the backpointers from end to start and reverses them.
func reconstruct(cameFrom map[maze.Cell]maze.Cell, start, end maze.Cell) Path {
	path := Path{end}
	for cell := end; cell != start; {
		cell = cameFrom[cell]
		path = append(path, cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
