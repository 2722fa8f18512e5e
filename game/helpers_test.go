package game

import (
	"sync"
	"testing"

	"github.com/beka-birhanu/vinom-mazecar/maze"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func (l *recordingLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errors)
}

func newTestSimulation(t *testing.T, strategy Strategy, mode maze.Mode) (*Simulation, *recordingLogger) {
	t.Helper()
	logger := &recordingLogger{}
	sim, err := New(Config{
		Size:      8,
		Mode:      mode,
		Algorithm: maze.Backtracker,
		Strategy:  strategy,
		Seed:      11,
	}, logger)
	require.NoError(t, err)
	return sim, logger
}

// useGrid swaps in a hand-built maze.
func useGrid(sim *Simulation, g *maze.Grid, exits ...maze.Cell) {
	sim.grid = g
	sim.exits = maze.NewExitSet(exits...)
	sim.cfg.Size = g.Size()
	sim.Reset()
}
