package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-mazecar/game/i"
)

// Runner-related errors.
var (
	ErrNilSimulation   = errors.New("simulation is nil")
	ErrInvalidInterval = errors.New("tick interval must be positive")
)

const commandBuffer = 16

// Runner steps a simulation at a fixed interval on a single goroutine.
// Commands are applied on the same goroutine, so the simulation is never
// touched concurrently.
type Runner struct {
	sim      *Simulation
	interval time.Duration
	logger   i.Logger
	stop     chan struct{}
	stopOnce sync.Once

	Commands  chan Command     // Channel for incoming inputs.
	StateChan chan Snapshot    // Channel for state after each tick or command.
	EndChan   chan GoalReached // Channel for goal events.
}

// NewRunner creates a runner for sim ticking every interval.
func NewRunner(sim *Simulation, interval time.Duration, logger i.Logger) (*Runner, error) {
	if sim == nil {
		return nil, ErrNilSimulation
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	return &Runner{
		sim:       sim,
		interval:  interval,
		logger:    logger,
		stop:      make(chan struct{}),
		Commands:  make(chan Command, commandBuffer),
		StateChan: make(chan Snapshot, 1),
		EndChan:   make(chan GoalReached, 1),
	}, nil
}

// Start runs the tick loop until Stop is called or ctx is done. Reaching an
// exit halts the simulation but the loop keeps serving commands, so a new
// maze or strategy starts another run. StateChan and EndChan are closed when
// it returns.
func (r *Runner) Start(ctx context.Context) error {
	defer close(r.StateChan)
	defer close(r.EndChan)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info(fmt.Sprintf("Runner started for simulation %s every %s", r.sim.ID, r.interval))
	for {
		select {
		case <-ctx.Done():
			r.logger.Warning(fmt.Sprintf("Runner for simulation %s cancelled: %v", r.sim.ID, ctx.Err()))
			return ctx.Err()
		case <-r.stop:
			r.logger.Info(fmt.Sprintf("Runner for simulation %s stopped", r.sim.ID))
			return nil
		case cmd := <-r.Commands:
			goal := r.handleCommand(cmd)
			r.publish()
			if goal != nil && !r.announce(ctx, *goal) {
				return ctx.Err()
			}
		case <-ticker.C:
			if r.sim.Halted() {
				continue
			}
			goal, err := r.sim.Step()
			if err != nil {
				r.logger.Error(fmt.Sprintf("Step: %v", err))
			}
			r.publish()
			if goal != nil && !r.announce(ctx, *goal) {
				return ctx.Err()
			}
		}
	}
}

// Stop ends the tick loop. It is safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *Runner) handleCommand(cmd Command) *GoalReached {
	switch cmd.Kind {
	case SetStrategyCommand:
		r.sim.SetStrategy(cmd.Strategy)
	case PressCommand:
		return r.sim.Press(cmd.Direction)
	case ReleaseCommand:
		r.sim.Release(cmd.Direction)
	case RegenerateCommand:
		if err := r.sim.Regenerate(cmd.Mode); err != nil {
			r.logger.Error(fmt.Sprintf("Regenerate: %v", err))
		}
	case ResetCommand:
		r.sim.Reset()
	default:
		r.logger.Warning(fmt.Sprintf("Unknown command kind %d", cmd.Kind))
	}
	return nil
}

// publish offers the latest snapshot without blocking; a reader that falls
// behind only sees the most recent state.
func (r *Runner) publish() {
	snap := r.sim.Snapshot()
	select {
	case <-r.StateChan:
	default:
	}
	r.StateChan <- snap
}

// announce delivers a goal event, giving up when the runner is stopped or ctx
// ends. It reports false only in the latter case.
func (r *Runner) announce(ctx context.Context, goal GoalReached) bool {
	select {
	case r.EndChan <- goal:
		return true
	case <-r.stop:
		return true
	case <-ctx.Done():
		return false
	}
}
