package game

import "github.com/beka-birhanu/vinom-mazecar/maze"

// Turn records the last steering decision of the wall follower.
type Turn uint8

const (
	TurnNone Turn = iota
	TurnLeft
	TurnRight
	TurnBack
)

func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case TurnBack:
		return "back"
	default:
		return "none"
	}
}

// Vehicle is the car moving through the maze.
type Vehicle struct {
	Position maze.Cell
	Facing   maze.Direction
	LastTurn Turn

	// Stuck counts consecutive dead-end reversals.
	Stuck int

	// Running is only read by the wall follower.
	Running bool
}

func newVehicle() Vehicle {
	return Vehicle{Position: maze.Start(), Facing: maze.Right}
}
