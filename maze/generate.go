package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var ErrGeneration = errors.New("maze generation failed")

// Mode selects how many exits a generated maze gets.
type Mode uint8

const (
	SingleExit Mode = iota // one exit in the bottom-right corner
	MultiExit              // three or four exits spread along the right and bottom edges
)

func (m Mode) String() string {
	switch m {
	case SingleExit:
		return "single"
	case MultiExit:
		return "multi"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode accepts "single" or "multi".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "single":
		return SingleExit, nil
	case "multi":
		return MultiExit, nil
	}
	return 0, fmt.Errorf("unknown maze mode %q", s)
}

// Algorithm selects the carving strategy.
type Algorithm uint8

const (
	Backtracker Algorithm = iota
	Division
	Wilson
)

var algorithmNames = map[Algorithm]string{
	Backtracker: "backtracker",
	Division:    "division",
	Wilson:      "wilson",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// ParseAlgorithm accepts "backtracker", "division" or "wilson".
func ParseAlgorithm(s string) (Algorithm, error) {
	for a, name := range algorithmNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown maze algorithm %q", s)
}

// Start returns the car's entrance cell, the top-left corner.
func Start() Cell {
	return Cell{X: 0, Y: 0}
}

type options struct {
	algorithm Algorithm
	rng       *rand.Rand
}

// Option customizes Generate.
type Option func(*options)

// WithAlgorithm picks the carving algorithm. The default is Backtracker.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		o.algorithm = a
	}
}

// WithRand supplies the random source, making generation reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// Generate builds a fully connected size × size maze and its exit set. The
// entrance is the left wall of the top-left cell.
func Generate(size int, mode Mode, opts ...Option) (*Grid, ExitSet, error) {
	o := &options{algorithm: Backtracker}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var (
		g   *Grid
		err error
	)
	switch o.algorithm {
	case Backtracker:
		g, err = carveBacktracker(size, o.rng)
	case Division:
		g, err = divide(size, o.rng)
	case Wilson:
		g, err = carveWilson(size, o.rng)
	default:
		return nil, ExitSet{}, fmt.Errorf("%w: unknown algorithm %s", ErrGeneration, o.algorithm)
	}
	if err != nil {
		return nil, ExitSet{}, err
	}

	var exits ExitSet
	switch mode {
	case SingleExit:
		exits = NewExitSet(Cell{X: size - 1, Y: size - 1})
	case MultiExit:
		exits = selectExits(size, o.rng)
	default:
		return nil, ExitSet{}, fmt.Errorf("%w: unknown mode %s", ErrGeneration, mode)
	}

	g.OpenBoundary(Start(), Left)
	if mode == SingleExit {
		g.OpenBoundary(exits.Cells()[0], Right)
	} else {
		openExits(g, exits)
	}

	if err := g.CheckSymmetry(); err != nil {
		return nil, ExitSet{}, fmt.Errorf("%w: %s: %w", ErrGeneration, o.algorithm, err)
	}
	if !g.Connected() {
		return nil, ExitSet{}, fmt.Errorf("%w: %s left unreachable cells", ErrGeneration, o.algorithm)
	}
	return g, exits, nil
}

// openExits clears the outward wall of every exit lying on the right or bottom edge.
func openExits(g *Grid, exits ExitSet) {
	last := g.Size() - 1
	for _, e := range exits.Cells() {
		if e.X == last {
			g.OpenBoundary(e, Right)
		}
		if e.Y == last {
			g.OpenBoundary(e, Down)
		}
	}
}
