// Package game drives a car through a generated maze under one of three
// strategies and reports when it reaches an exit.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-mazecar/game/i"
	"github.com/beka-birhanu/vinom-mazecar/maze"
	"github.com/beka-birhanu/vinom-mazecar/solver"
	"github.com/google/uuid"
)

// Simulation-related errors.
var (
	ErrNilLogger       = errors.New("logger is nil")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Config holds the settings a simulation is created with.
type Config struct {
	Size      int
	Mode      maze.Mode
	Algorithm maze.Algorithm
	Strategy  Strategy
	Seed      int64 // zero seeds from the clock
}

// GoalReached is emitted once when the vehicle arrives on an exit.
type GoalReached struct {
	Position maze.Cell
	Steps    int
	Strategy Strategy
}

// Simulation owns the maze and the vehicle. It is not safe for concurrent
// use; a Runner serializes access to it.
type Simulation struct {
	ID uuid.UUID

	cfg      Config
	rng      *rand.Rand
	grid     *maze.Grid
	exits    maze.ExitSet
	vehicle  Vehicle
	strategy Strategy
	follower *WallFollower
	logger   i.Logger

	path      solver.Path
	pathIndex int

	held    maze.Direction
	holding bool

	halted bool
	steps  int
}

// New creates a simulation and generates its first maze.
func New(cfg Config, logger i.Logger) (*Simulation, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	if _, ok := strategyNames[cfg.Strategy]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, cfg.Strategy)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Simulation{
		ID:       uuid.New(),
		cfg:      cfg,
		rng:      rng,
		follower: NewWallFollower(rng),
		logger:   logger,
	}
	if err := s.generate(cfg.Mode); err != nil {
		return nil, err
	}
	s.SetStrategy(cfg.Strategy)
	return s, nil
}

func (s *Simulation) generate(mode maze.Mode) error {
	grid, exits, err := maze.Generate(s.cfg.Size, mode, maze.WithAlgorithm(s.cfg.Algorithm), maze.WithRand(s.rng))
	if err != nil {
		return fmt.Errorf("generating %s maze: %w", mode, err)
	}

	s.grid = grid
	s.exits = exits
	s.cfg.Mode = mode
	s.logger.Info(fmt.Sprintf("Simulation %s: generated %dx%d %s maze (%s) with %d exit(s)",
		s.ID, s.cfg.Size, s.cfg.Size, mode, s.cfg.Algorithm, exits.Len()))
	return nil
}

// SetStrategy switches the navigation strategy and puts the vehicle back on
// the start cell.
func (s *Simulation) SetStrategy(strategy Strategy) {
	s.strategy = strategy
	s.Reset()
	s.logger.Info(fmt.Sprintf("Simulation %s: strategy %s", s.ID, strategy))
}

// Strategy returns the active strategy.
func (s *Simulation) Strategy() Strategy {
	return s.strategy
}

// Halted reports whether automatic stepping has stopped, either because an
// exit was reached or because no path exists.
func (s *Simulation) Halted() bool {
	return s.halted
}

// Reset moves the vehicle back to the start and clears the path. The maze is kept.
func (s *Simulation) Reset() {
	s.vehicle = newVehicle()
	s.vehicle.Running = s.strategy == WallFollow
	s.path = nil
	s.pathIndex = 0
	s.holding = false
	s.halted = false
	s.steps = 0
}

// Regenerate builds a fresh maze in the given mode and resets the vehicle.
// On error the current maze is kept.
func (s *Simulation) Regenerate(mode maze.Mode) error {
	if err := s.generate(mode); err != nil {
		return err
	}
	s.Reset()
	return nil
}

// Press starts continuous movement in d and moves once right away. It is
// ignored outside manual mode.
func (s *Simulation) Press(d maze.Direction) *GoalReached {
	if s.strategy != Manual || s.halted {
		return nil
	}
	s.held = d
	s.holding = true
	return s.moveManual()
}

// Release stops continuous movement if d is the held direction.
func (s *Simulation) Release(d maze.Direction) {
	if s.holding && s.held == d {
		s.holding = false
	}
}

// Step advances the simulation by one tick. A GoalReached is returned on the
// tick the vehicle arrives on an exit; afterwards Step does nothing until the
// simulation is reset. A solver failure halts the simulation the same way.
func (s *Simulation) Step() (*GoalReached, error) {
	if s.halted {
		return nil, nil
	}

	switch s.strategy {
	case Manual:
		return s.moveManual(), nil
	case WallFollow:
		return s.stepWallFollow(), nil
	case AutoSolve:
		return s.stepAutoSolve()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, s.strategy)
	}
}

func (s *Simulation) moveManual() *GoalReached {
	if !s.holding || !s.grid.CanMove(s.vehicle.Position, s.held) {
		return nil
	}
	s.vehicle.Position = s.vehicle.Position.Step(s.held)
	s.vehicle.Facing = s.held
	s.steps++
	return s.checkGoal()
}

func (s *Simulation) stepWallFollow() *GoalReached {
	before := s.vehicle.Position
	s.vehicle, _ = s.follower.Next(s.grid, s.exits, s.vehicle)
	if s.vehicle.Position != before {
		s.steps++
	}
	return s.checkGoal()
}

func (s *Simulation) stepAutoSolve() (*GoalReached, error) {
	if s.path == nil {
		path, err := solver.Solve(s.grid, s.vehicle.Position, s.exits)
		if err != nil {
			s.halted = true
			s.logger.Error(fmt.Sprintf("Simulation %s: %v", s.ID, err))
			return nil, fmt.Errorf("auto solve: %w", err)
		}
		s.path = path
		s.pathIndex = 1
		s.logger.Info(fmt.Sprintf("Simulation %s: path of %d moves found", s.ID, path.Moves()))
	}

	if goal := s.checkGoal(); goal != nil {
		return goal, nil
	}
	if s.pathIndex < len(s.path) {
		s.vehicle.Position = s.path[s.pathIndex]
		s.pathIndex++
		s.steps++
	}
	return s.checkGoal(), nil
}

func (s *Simulation) checkGoal() *GoalReached {
	if !s.exits.Contains(s.vehicle.Position) {
		return nil
	}

	s.halted = true
	s.holding = false
	s.vehicle.Running = false
	s.logger.Info(fmt.Sprintf("Simulation %s: reached exit %s after %d steps (%s)",
		s.ID, s.vehicle.Position, s.steps, s.strategy))
	return &GoalReached{
		Position: s.vehicle.Position,
		Steps:    s.steps,
		Strategy: s.strategy,
	}
}
