package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-mazecar/maze"
)

// ErrUnknownCommand is returned for input ParseCommand cannot map.
var ErrUnknownCommand = errors.New("unknown command")

// CommandKind identifies what a Command asks the runner to do.
type CommandKind uint8

const (
	SetStrategyCommand CommandKind = iota // switch to Command.Strategy
	PressCommand                          // hold Command.Direction
	ReleaseCommand                        // let go of Command.Direction
	RegenerateCommand                     // new maze in Command.Mode
	ResetCommand                          // back to the start cell
)

// Command is an input forwarded to the simulation between ticks.
type Command struct {
	Kind      CommandKind
	Strategy  Strategy
	Direction maze.Direction
	Mode      maze.Mode
}

// strategyKeys are the number shortcuts for the three strategies.
var strategyKeys = map[string]Strategy{
	"1": Manual,
	"2": WallFollow,
	"3": AutoSolve,
}

// ParseCommand reads one line of terminal input:
//
//	press <direction>    hold a direction, e.g. "press up"
//	release <direction>  let it go
//	1 | 2 | 3            manual, wall_follow or auto_solve (names work too)
//	single | multi       regenerate with one or several exits
//	reset                back to the start cell
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	switch fields[0] {
	case "press", "release":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("%w: %s needs a direction", ErrUnknownCommand, fields[0])
		}
		d, err := maze.ParseDirection(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %w", ErrUnknownCommand, err)
		}
		kind := PressCommand
		if fields[0] == "release" {
			kind = ReleaseCommand
		}
		return Command{Kind: kind, Direction: d}, nil
	case "reset":
		return Command{Kind: ResetCommand}, nil
	}

	if len(fields) != 1 {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}
	if s, ok := strategyKeys[fields[0]]; ok {
		return Command{Kind: SetStrategyCommand, Strategy: s}, nil
	}
	if s, err := ParseStrategy(fields[0]); err == nil {
		return Command{Kind: SetStrategyCommand, Strategy: s}, nil
	}
	if m, err := maze.ParseMode(fields[0]); err == nil {
		return Command{Kind: RegenerateCommand, Mode: m}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
}
