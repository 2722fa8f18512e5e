package game

import (
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-mazecar/maze"
	"github.com/beka-birhanu/vinom-mazecar/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulation(t *testing.T) {
	t.Run("nil logger", func(t *testing.T) {
		_, err := New(Config{Size: 5}, nil)
		assert.ErrorIs(t, err, ErrNilLogger)
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := New(Config{Size: 1}, &recordingLogger{})
		assert.ErrorIs(t, err, maze.ErrInvalidSize)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := New(Config{Size: 5, Strategy: Strategy(7)}, &recordingLogger{})
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("starts at the origin", func(t *testing.T) {
		sim, _ := newTestSimulation(t, WallFollow, maze.MultiExit)
		snap := sim.Snapshot()
		assert.Equal(t, maze.Start(), snap.Vehicle.Position)
		assert.Equal(t, maze.Right, snap.Vehicle.Facing)
		assert.True(t, snap.Vehicle.Running)
		assert.GreaterOrEqual(t, len(snap.Exits), 2)
		assert.False(t, snap.Done)
	})
}

func TestRegenerateResetsVehicle(t *testing.T) {
	sim, _ := newTestSimulation(t, AutoSolve, maze.SingleExit)
	for i := 0; i < 3; i++ {
		_, err := sim.Step()
		require.NoError(t, err)
	}
	require.NotEqual(t, maze.Start(), sim.Snapshot().Vehicle.Position)

	require.NoError(t, sim.Regenerate(maze.SingleExit))
	first := sim.Snapshot()
	require.NoError(t, sim.Regenerate(maze.SingleExit))
	second := sim.Snapshot()

	for _, snap := range []Snapshot{first, second} {
		assert.Equal(t, maze.Start(), snap.Vehicle.Position)
		assert.Empty(t, snap.Path)
		assert.Zero(t, snap.Steps)
		assert.Equal(t, []maze.Cell{{X: 7, Y: 7}}, snap.Exits)
	}
	assert.NotEqual(t, first.Grid.Masks(), second.Grid.Masks(), "regeneration re-randomizes the maze")
}

func TestResetKeepsMaze(t *testing.T) {
	sim, _ := newTestSimulation(t, AutoSolve, maze.MultiExit)
	before := sim.Snapshot()
	_, err := sim.Step()
	require.NoError(t, err)

	sim.Reset()
	sim.Reset()
	after := sim.Snapshot()
	assert.Equal(t, maze.Start(), after.Vehicle.Position)
	assert.Empty(t, after.Path)
	assert.Equal(t, before.Grid.Masks(), after.Grid.Masks())
	assert.Equal(t, before.Exits, after.Exits)
}

func TestAutoSolveReachesExit(t *testing.T) {
	for _, mode := range []maze.Mode{maze.SingleExit, maze.MultiExit} {
		t.Run(mode.String(), func(t *testing.T) {
			sim, _ := newTestSimulation(t, AutoSolve, mode)
			want, err := solver.Solve(sim.grid, maze.Start(), sim.exits)
			require.NoError(t, err)

			var goals []*GoalReached
			for i := 0; i < 8*8+2; i++ {
				goal, err := sim.Step()
				require.NoError(t, err)
				if goal != nil {
					goals = append(goals, goal)
				}
			}

			require.Len(t, goals, 1, "goal is reported once")
			last, _ := want.Last()
			assert.Equal(t, last, goals[0].Position)
			assert.Equal(t, want.Moves(), goals[0].Steps)
			assert.Equal(t, AutoSolve, goals[0].Strategy)
			assert.True(t, sim.Halted())
			assert.Equal(t, []maze.Cell(want), sim.Snapshot().Path)
		})
	}
}

func TestAutoSolveNoPath(t *testing.T) {
	sim, logger := newTestSimulation(t, AutoSolve, maze.SingleExit)
	walled, err := maze.New(4)
	require.NoError(t, err)
	useGrid(sim, walled, maze.Cell{X: 3, Y: 3})

	goal, err := sim.Step()
	assert.Nil(t, goal)
	assert.ErrorIs(t, err, solver.ErrNoPath)
	assert.True(t, sim.Halted())
	assert.Equal(t, 1, logger.errorCount())

	goal, err = sim.Step()
	assert.Nil(t, goal)
	assert.NoError(t, err, "halted simulation takes no further steps")
	assert.Equal(t, maze.Start(), sim.Snapshot().Vehicle.Position)

	t.Run("a new maze resumes", func(t *testing.T) {
		require.NoError(t, sim.Regenerate(maze.SingleExit))
		assert.False(t, sim.Halted())
		_, err := sim.Step()
		assert.NoError(t, err)
	})
}

func TestManualMovement(t *testing.T) {
	sim, _ := newTestSimulation(t, Manual, maze.SingleExit)
	g, err := maze.New(3)
	require.NoError(t, err)
	g.CarvePassage(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 1, Y: 0})
	g.CarvePassage(maze.Cell{X: 1, Y: 0}, maze.Cell{X: 1, Y: 1})
	g.CarvePassage(maze.Cell{X: 1, Y: 1}, maze.Cell{X: 2, Y: 1})
	useGrid(sim, g, maze.Cell{X: 2, Y: 1})

	t.Run("blocked move is ignored", func(t *testing.T) {
		assert.Nil(t, sim.Press(maze.Down))
		assert.Equal(t, maze.Start(), sim.Snapshot().Vehicle.Position)
		sim.Release(maze.Down)
	})

	t.Run("press moves at once and holding keeps moving", func(t *testing.T) {
		assert.Nil(t, sim.Press(maze.Right))
		assert.Equal(t, maze.Cell{X: 1, Y: 0}, sim.Snapshot().Vehicle.Position)

		goal, err := sim.Step()
		require.NoError(t, err)
		assert.Nil(t, goal)
		assert.Equal(t, maze.Cell{X: 1, Y: 0}, sim.Snapshot().Vehicle.Position, "wall ahead")
	})

	t.Run("release stops movement", func(t *testing.T) {
		sim.Release(maze.Left)
		sim.Release(maze.Right)
		sim.Press(maze.Down)
		sim.Release(maze.Down)
		_, err := sim.Step()
		require.NoError(t, err)
		assert.Equal(t, maze.Cell{X: 1, Y: 1}, sim.Snapshot().Vehicle.Position)
	})

	t.Run("arrival fires once", func(t *testing.T) {
		goal := sim.Press(maze.Right)
		require.NotNil(t, goal)
		assert.Equal(t, GoalReached{Position: maze.Cell{X: 2, Y: 1}, Steps: 3, Strategy: Manual}, *goal)

		goal, err := sim.Step()
		assert.NoError(t, err)
		assert.Nil(t, goal)
		assert.Nil(t, sim.Press(maze.Left))
	})
}

func TestPressIgnoredOutsideManual(t *testing.T) {
	sim, _ := newTestSimulation(t, AutoSolve, maze.SingleExit)
	g, err := maze.New(2)
	require.NoError(t, err)
	g.CarvePassage(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 1, Y: 0})
	useGrid(sim, g, maze.Cell{X: 1, Y: 1})

	assert.Nil(t, sim.Press(maze.Right))
	assert.Equal(t, maze.Start(), sim.Snapshot().Vehicle.Position)
}

func TestWallFollowReachesExit(t *testing.T) {
	// Right-hand following walks the whole spanning tree, so it always finds
	// the exit of a perfect maze.
	for _, algorithm := range []maze.Algorithm{maze.Backtracker, maze.Division, maze.Wilson} {
		t.Run(algorithm.String(), func(t *testing.T) {
			logger := &recordingLogger{}
			sim, err := New(Config{Size: 8, Mode: maze.SingleExit, Algorithm: algorithm, Strategy: WallFollow, Seed: 5}, logger)
			require.NoError(t, err)

			var goal *GoalReached
			for i := 0; i < 4*8*8 && goal == nil; i++ {
				goal, err = sim.Step()
				require.NoError(t, err)
			}
			require.NotNil(t, goal)
			assert.Equal(t, maze.Cell{X: 7, Y: 7}, goal.Position)
			assert.Equal(t, WallFollow, goal.Strategy)
			assert.False(t, sim.Snapshot().Vehicle.Running)
		})
	}
}

func TestSetStrategy(t *testing.T) {
	sim, _ := newTestSimulation(t, AutoSolve, maze.SingleExit)
	_, err := sim.Step()
	require.NoError(t, err)

	sim.SetStrategy(WallFollow)
	snap := sim.Snapshot()
	assert.Equal(t, WallFollow, snap.Strategy)
	assert.Equal(t, maze.Start(), snap.Vehicle.Position)
	assert.True(t, snap.Vehicle.Running)
	assert.Empty(t, snap.Path)

	sim.SetStrategy(Manual)
	assert.False(t, sim.Snapshot().Vehicle.Running)
	assert.Equal(t, Manual, sim.Strategy())
}

func TestSnapshot(t *testing.T) {
	sim, _ := newTestSimulation(t, AutoSolve, maze.SingleExit)
	_, err := sim.Step()
	require.NoError(t, err)

	snap := sim.Snapshot()
	masks := sim.grid.Masks()
	require.NotEmpty(t, snap.Path)
	snap.Path[0] = maze.Cell{X: 5, Y: 5}
	snap.Grid.BuildWall(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 1, Y: 0})
	snap.Grid.BuildWall(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 0, Y: 1})
	assert.Equal(t, maze.Start(), sim.Snapshot().Path[0], "snapshot path is a copy")
	assert.Equal(t, masks, sim.grid.Masks(), "snapshot grid is a copy")

	rendered := sim.Snapshot().Render()
	assert.Equal(t, 1, strings.Count(rendered, "C"))
	assert.Equal(t, 1, strings.Count(rendered, "E"))
	assert.Contains(t, rendered, " . ")
	assert.Equal(t, 2*8+1, strings.Count(rendered, "\n"))
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{Manual, WallFollow, AutoSolve} {
		parsed, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := ParseStrategy("random")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}
