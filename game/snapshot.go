package game

import (
	"github.com/beka-birhanu/vinom-mazecar/maze"
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// Snapshot is a read-only copy of the simulation state for rendering.
type Snapshot struct {
	ID       uuid.UUID
	Grid     *maze.Grid
	Exits    []maze.Cell
	Vehicle  Vehicle
	Path     []maze.Cell
	Strategy Strategy
	Steps    int
	Done     bool
}

// Snapshot copies the current state. Later steps do not affect it.
func (s *Simulation) Snapshot() Snapshot {
	var path []maze.Cell
	if len(s.path) > 0 {
		path = make([]maze.Cell, len(s.path))
		copy(path, s.path)
	}

	return Snapshot{
		ID:       s.ID,
		Grid:     s.grid.Clone(),
		Exits:    s.exits.Cells(),
		Vehicle:  s.vehicle,
		Path:     path,
		Strategy: s.strategy,
		Steps:    s.steps,
		Done:     s.halted,
	}
}

// Render draws the maze with the car as C, exits as E and the planned path as dots.
func (s Snapshot) Render() string {
	exits := mapset.Of(s.Exits...)
	onPath := mapset.Of(s.Path...)

	return s.Grid.Render(func(c maze.Cell) string {
		if c == s.Vehicle.Position {
			return " C "
		}
		if exits.Has(c) {
			return " E "
		}
		if onPath.Has(c) {
			return " . "
		}
		return "   "
	})
}
