package game

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-mazecar/maze"
)

// maxStuck is how many reversals in a row are tolerated before the follower
// picks a random facing.
const maxStuck = 3

// WallFollower steers with the right-hand rule. It keeps no knowledge of the
// maze beyond the walls around the vehicle.
type WallFollower struct {
	rng *rand.Rand
}

// NewWallFollower creates a follower drawing its escape headings from rng.
func NewWallFollower(rng *rand.Rand) *WallFollower {
	return &WallFollower{rng: rng}
}

// Next advances v by at most one cell. The boolean is true when v already
// stands on an exit, in which case v is stopped and not moved.
func (w *WallFollower) Next(g *maze.Grid, exits maze.ExitSet, v Vehicle) (Vehicle, bool) {
	if exits.Contains(v.Position) {
		v.Running = false
		return v, true
	}
	if !v.Running {
		return v, false
	}

	candidates := [...]struct {
		dir  maze.Direction
		turn Turn
	}{
		{v.Facing.Clockwise(), TurnRight},
		{v.Facing, TurnNone},
		{v.Facing.CounterClockwise(), TurnLeft},
	}
	for _, c := range candidates {
		if g.CanMove(v.Position, c.dir) {
			v.Position = v.Position.Step(c.dir)
			v.Facing = c.dir
			v.Stuck = 0
			v.LastTurn = c.turn
			return v, false
		}
	}

	v.Facing = v.Facing.Opposite()
	v.LastTurn = TurnBack
	v.Stuck++
	if v.Stuck > maxStuck {
		v.Facing = maze.Directions[w.rng.Intn(len(maze.Directions))]
		v.Stuck = 0
	}
	return v, false
}
